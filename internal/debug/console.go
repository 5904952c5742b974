package debug

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Versifine/strafe/internal/physics"
	"github.com/Versifine/strafe/internal/sim"
	"golang.org/x/term"
)

const (
	defaultTickInterval = 16 * time.Millisecond
	yawStep             = 5.0
	pitchStep           = 5.0
)

var errQuit = errors.New("console quit")

// Driver receives the player's key presses; *sim.Manual implements it.
type Driver interface {
	Move(dir physics.Vec2)
	Jump()
	Turn(yaw, pitch float64)
	Fire()
	ToggleAim()
}

// World is the simulation the console advances and inspects.
type World interface {
	Frame(frameDt float64)
	State(name string) (sim.CharacterState, error)
	Teleport(name string, pos physics.Vec3) error
	Summary() sim.Summary
}

// Console drives one character from a raw terminal and advances the world
// in real time.
type Console struct {
	world        World
	driver       Driver
	name         string
	in           io.Reader
	out          io.Writer
	tickInterval time.Duration

	outMu sync.Mutex

	mu          sync.Mutex
	commandMode bool
	commandBuf  []rune
	statusWidth int
}

func NewConsole(world World, driver Driver, name string) *Console {
	return &Console{
		world:        world,
		driver:       driver,
		name:         name,
		in:           os.Stdin,
		out:          os.Stdout,
		tickInterval: defaultTickInterval,
	}
}

// SetIO replaces stdin and stdout.
func (c *Console) SetIO(in io.Reader, out io.Writer) {
	c.in = in
	c.out = out
}

func (c *Console) Start(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("console is nil")
	}
	if c.world == nil {
		return fmt.Errorf("console world is nil")
	}
	if c.driver == nil {
		return fmt.Errorf("console driver is nil")
	}

	if f, ok := c.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("set terminal raw mode: %w", err)
		}
		defer func() {
			_ = term.Restore(fd, oldState)
			c.printf("\r\n")
		}()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.printf("[debug] console started (W/A/S/D pulse, Space jump, F fire, R aim, arrows look, : command, Q quit)\r\n")
	c.renderStatusLine()

	go c.tickLoop(ctx)

	reader := bufio.NewReader(c.in)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		b, err := reader.ReadByte()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read console input: %w", err)
		}
		if err := c.handleKey(reader, b); errors.Is(err, errQuit) {
			return nil
		}
	}
}

func (c *Console) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			c.world.Frame(now.Sub(last).Seconds())
			last = now
			c.renderStatusLine()
		}
	}
}

func (c *Console) handleKey(reader *bufio.Reader, b byte) error {
	if c.isCommandMode() {
		c.handleCommandByte(b)
		return nil
	}

	switch b {
	case ':':
		c.enterCommandMode()
		return nil
	case 'q', 'Q', 3: // Ctrl-C arrives as a byte in raw mode
		return errQuit
	case 'w', 'W':
		c.driver.Move(physics.Vec2{Y: 1})
	case 's', 'S':
		c.driver.Move(physics.Vec2{Y: -1})
	case 'a', 'A':
		c.driver.Move(physics.Vec2{X: -1})
	case 'd', 'D':
		c.driver.Move(physics.Vec2{X: 1})
	case ' ':
		c.driver.Jump()
	case 'f', 'F':
		c.driver.Fire()
	case 'r', 'R':
		c.driver.ToggleAim()
	case 27: // ESC + arrow sequence
		next, err := reader.ReadByte()
		if err != nil || next != '[' {
			return nil
		}
		arrow, err := reader.ReadByte()
		if err != nil {
			return nil
		}
		switch arrow {
		case 'D': // left
			c.driver.Turn(-yawStep, 0)
		case 'C': // right
			c.driver.Turn(yawStep, 0)
		case 'A': // up
			c.driver.Turn(0, -pitchStep)
		case 'B': // down
			c.driver.Turn(0, pitchStep)
		}
	}
	c.renderStatusLine()
	return nil
}

func (c *Console) enterCommandMode() {
	c.mu.Lock()
	c.commandMode = true
	c.commandBuf = c.commandBuf[:0]
	c.mu.Unlock()
	c.printf("\r\n:")
}

func (c *Console) handleCommandByte(b byte) {
	switch b {
	case 13, 10: // Enter
		c.mu.Lock()
		cmd := strings.TrimSpace(string(c.commandBuf))
		c.commandMode = false
		c.commandBuf = c.commandBuf[:0]
		c.mu.Unlock()

		c.printf("\r\n")
		if cmd != "" {
			c.executeCommand(cmd)
		}
		c.renderStatusLine()
		return
	case 27: // ESC cancel command mode
		c.mu.Lock()
		c.commandMode = false
		c.commandBuf = c.commandBuf[:0]
		c.mu.Unlock()
		c.printf("\r\n[debug] command cancelled\r\n")
		c.renderStatusLine()
		return
	case 8, 127: // Backspace
		c.mu.Lock()
		if len(c.commandBuf) > 0 {
			c.commandBuf = c.commandBuf[:len(c.commandBuf)-1]
		}
		buf := string(c.commandBuf)
		c.mu.Unlock()
		c.printf("\r:%s ", buf)
		c.printf("\r:%s", buf)
		return
	default:
		if b < 32 || b > 126 {
			return
		}
		c.mu.Lock()
		c.commandBuf = append(c.commandBuf, rune(b))
		buf := string(c.commandBuf)
		c.mu.Unlock()
		c.printf("\r:%s", buf)
	}
}

func (c *Console) executeCommand(cmd string) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "help":
		c.printHelp()
	case "state":
		st, err := c.world.State(c.name)
		if err != nil {
			c.printf("[debug] %v\r\n", err)
			return
		}
		c.printf("[debug] pos=(%.3f,%.3f,%.3f) vel=(%.3f,%.3f,%.3f) speed=%.2f ground=%t\r\n",
			st.Position.X, st.Position.Y, st.Position.Z,
			st.Velocity.X, st.Velocity.Y, st.Velocity.Z,
			st.Speed, st.Grounded,
		)
		c.printf("[debug] bonus=%.3f grounded_since=%.3f last_jump=%.3f window=%t shots=%d hits=%d\r\n",
			st.Momentum.BonusSpeed, st.Momentum.GroundedSince, st.Momentum.LastJumpIntent,
			st.WindowOpen, st.Stats.Shots, st.Stats.Hits,
		)
	case "targets":
		for _, t := range c.world.Summary().Targets {
			c.printf("[debug] %s hp=%.0f hits=%d\r\n", t.Name, t.Health, t.Hits)
		}
	case "tp":
		if len(parts) != 4 {
			c.printf("[debug] usage: :tp <x> <y> <z>\r\n")
			return
		}
		pos, ok := parseVec(parts[1:])
		if !ok {
			c.printf("[debug] invalid tp args\r\n")
			return
		}
		if err := c.world.Teleport(c.name, pos); err != nil {
			c.printf("[debug] %v\r\n", err)
			return
		}
		c.printf("[debug] tp to (%.3f, %.3f, %.3f)\r\n", pos.X, pos.Y, pos.Z)
	case "look":
		if len(parts) != 4 {
			c.printf("[debug] usage: :look <x> <y> <z>\r\n")
			return
		}
		at, ok := parseVec(parts[1:])
		if !ok {
			c.printf("[debug] invalid look args\r\n")
			return
		}
		c.lookAt(at)
	default:
		c.printf("[debug] unknown command: %s\r\n", parts[0])
	}
}

func parseVec(args []string) (physics.Vec3, bool) {
	x, err1 := strconv.ParseFloat(args[0], 64)
	y, err2 := strconv.ParseFloat(args[1], 64)
	z, err3 := strconv.ParseFloat(args[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return physics.Vec3{}, false
	}
	v := physics.Vec3{X: x, Y: y, Z: z}
	return v, v.IsFinite()
}

// lookAt turns the camera from the eye toward p.
func (c *Console) lookAt(p physics.Vec3) {
	st, err := c.world.State(c.name)
	if err != nil {
		c.printf("[debug] %v\r\n", err)
		return
	}
	d := p.Sub(st.Position)
	yaw := math.Atan2(d.X, d.Z) * 180 / math.Pi
	pitch := -math.Atan2(d.Y, d.Horizontal().Len()) * 180 / math.Pi
	c.driver.Turn(physics.WrapAngle((yaw-st.Yaw)*math.Pi/180)*180/math.Pi, pitch-st.Pitch)
	c.printf("[debug] look at (%.3f, %.3f, %.3f)\r\n", p.X, p.Y, p.Z)
	slog.Debug("debug look", "yaw", yaw, "pitch", pitch)
}

func (c *Console) printHelp() {
	c.printf("[debug] keys:\r\n")
	c.printf("  W/S/A/D: pulse movement (%d frames)\r\n", sim.ManualPulseFrames)
	c.printf("  Space: jump\r\n")
	c.printf("  F: fire, R: toggle aim\r\n")
	c.printf("  Arrow Left/Right: yaw -/+%.0f\r\n", yawStep)
	c.printf("  Arrow Up/Down: pitch -/+%.0f\r\n", pitchStep)
	c.printf("  Q: quit\r\n")
	c.printf("  : enter command mode\r\n")
	c.printf("[debug] commands:\r\n")
	c.printf("  :state\r\n")
	c.printf("  :targets\r\n")
	c.printf("  :tp <x> <y> <z>\r\n")
	c.printf("  :look <x> <y> <z>\r\n")
	c.printf("  :help\r\n")
}

func (c *Console) renderStatusLine() {
	c.mu.Lock()
	if c.commandMode {
		c.mu.Unlock()
		return
	}
	width := c.statusWidth
	c.mu.Unlock()

	st, err := c.world.State(c.name)
	if err != nil {
		return
	}
	line := fmt.Sprintf(
		"[SPD:%.2f BON:%.2f WIN:%s GND:%s | YAW:%.1f PIT:%.1f | X:%.2f Y:%.2f Z:%.2f]",
		st.Speed,
		st.Momentum.BonusSpeed,
		boolLabel(st.WindowOpen),
		boolLabel(st.Grounded),
		st.Yaw,
		st.Pitch,
		st.Position.X,
		st.Position.Y,
		st.Position.Z,
	)

	padding := ""
	if width > len(line) {
		padding = strings.Repeat(" ", width-len(line))
	}
	c.printf("\r%s%s", line, padding)

	c.mu.Lock()
	if len(line) > c.statusWidth {
		c.statusWidth = len(line)
	}
	c.mu.Unlock()
}

func (c *Console) printf(format string, args ...any) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) isCommandMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commandMode
}

func boolLabel(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
