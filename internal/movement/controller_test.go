package movement

import (
	"math"
	"testing"

	"github.com/Versifine/strafe/internal/movement/mocks"
	"github.com/Versifine/strafe/internal/physics"
	"go.uber.org/mock/gomock"
)

const fixedDt = 1.0 / 50

type fakeBody struct {
	pos      physics.Vec3
	vel      physics.Vec3
	impulses []physics.Vec3
}

func (b *fakeBody) Position() physics.Vec3     { return b.pos }
func (b *fakeBody) Velocity() physics.Vec3     { return b.vel }
func (b *fakeBody) SetVelocity(v physics.Vec3) { b.vel = v }
func (b *fakeBody) AddImpulse(j physics.Vec3) {
	b.impulses = append(b.impulses, j)
	b.vel = b.vel.Add(j)
}

type fakeGround struct {
	grounded bool
	calls    int
}

func (g *fakeGround) Contact(physics.Vec3, float64, physics.LayerMask) bool {
	g.calls++
	return g.grounded
}

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

// noDecayParams isolates the jump rule from time-based bleed.
func noDecayParams() Params {
	p := DefaultParams()
	p.BaseDecay = 0
	p.SpeedDecayFactor = 0
	p.ConstantDecay = 0
	return p
}

func newTestController(p Params) (*Controller, *fakeBody, *fakeGround) {
	body := &fakeBody{}
	ground := &fakeGround{}
	return NewController(p, body, ground), body, ground
}

func steer(c *Controller, move physics.Vec2, yaw float64) {
	c.SampleInput(FrameInputs{Move: move})
	c.FinalizeDirection(yaw)
}

func pressJump(c *Controller, move physics.Vec2, at float64) {
	c.SampleInput(FrameInputs{Move: move, JumpPressed: true, Time: at})
	c.FinalizeDirection(0)
}

func TestFinalizeDirection_CameraRelativeAndNormalized(t *testing.T) {
	c, _, _ := newTestController(DefaultParams())

	steer(c, physics.Vec2{Y: 1}, 90)
	dir := c.DesiredMoveDir()
	approxEqual(t, dir.X, 1, 1e-12, "dir.x")
	approxEqual(t, dir.Z, 0, 1e-12, "dir.z")

	steer(c, physics.Vec2{X: 3, Y: 3}, 0)
	approxEqual(t, c.DesiredMoveDir().Len(), 1, 1e-12, "diagonal length")

	steer(c, physics.Vec2{}, 0)
	if c.DesiredMoveDir() != (physics.Vec3{}) {
		t.Fatalf("no input dir = %+v, want zero", c.DesiredMoveDir())
	}
}

func TestStep_GroundedSnapsToWishVelocity(t *testing.T) {
	c, body, ground := newTestController(DefaultParams())
	ground.grounded = true
	body.vel = physics.Vec3{X: -3, Y: -1, Z: 0}

	steer(c, physics.Vec2{Y: 1}, 0)
	res := c.Step(0, fixedDt)

	if !res.Grounded {
		t.Fatalf("grounded = false, want true")
	}
	approxEqual(t, body.vel.X, 0, 1e-12, "vel.x")
	approxEqual(t, body.vel.Z, 6, 1e-12, "vel.z")
	approxEqual(t, body.vel.Y, -1, 1e-12, "vel.y")
}

func TestStep_AirControlRotatesAtTurnRate(t *testing.T) {
	p := DefaultParams()
	p.AirTurnRate = 2
	c, body, _ := newTestController(p)
	body.vel = physics.Vec3{X: 8, Y: 1}

	steer(c, physics.Vec2{Y: 1}, 0)
	c.Step(0, fixedDt)

	approxEqual(t, physics.AngleBetween(physics.Vec3{X: 1}, body.vel.Horizontal()), 2*fixedDt, 1e-9, "turned")
	approxEqual(t, body.vel.Horizontal().Len(), 8, 1e-9, "speed")
	approxEqual(t, body.vel.Y, 1, 1e-12, "vel.y")
}

func TestStep_AirControlWithoutPreserveReachesEffectiveSpeed(t *testing.T) {
	p := DefaultParams()
	p.PreserveAirSpeed = false
	c, body, _ := newTestController(p)
	body.vel = physics.Vec3{Z: 3}

	steer(c, physics.Vec2{Y: 1}, 0)
	c.Step(0, fixedDt)

	approxEqual(t, body.vel.Z, 6, 1e-9, "vel.z")
}

func TestStep_AirFromRestGivesSmallKick(t *testing.T) {
	c, body, _ := newTestController(DefaultParams())

	steer(c, physics.Vec2{X: 1}, 0)
	c.Step(0, fixedDt)

	approxEqual(t, body.vel.X, 0.2*6, 1e-12, "vel.x")
}

func TestStep_AirWithoutInputKeepsMomentum(t *testing.T) {
	c, body, _ := newTestController(DefaultParams())
	body.vel = physics.Vec3{X: 4, Y: -2, Z: 7}

	steer(c, physics.Vec2{}, 0)
	c.Step(0, fixedDt)

	if body.vel != (physics.Vec3{X: 4, Y: -2, Z: 7}) {
		t.Fatalf("vel = %+v, want unchanged", body.vel)
	}
}

func TestStep_LandingReportsFallSpeed(t *testing.T) {
	c, body, ground := newTestController(DefaultParams())

	body.vel = physics.Vec3{Y: -7.5}
	c.Step(0, fixedDt)

	// The integrator stops the body on contact before the next step.
	body.vel = physics.Vec3{}
	ground.grounded = true
	res := c.Step(fixedDt, fixedDt)

	if !res.Landing.Occurred {
		t.Fatalf("landing not reported")
	}
	approxEqual(t, res.Landing.FallSpeed, 7.5, 1e-12, "fall speed")
	approxEqual(t, c.GroundedSince(), fixedDt, 1e-12, "grounded since")

	res = c.Step(2*fixedDt, fixedDt)
	if res.Landing.Occurred {
		t.Fatalf("landing reported twice for one touchdown")
	}
}

func TestStep_NoLandingWhenRisingIntoContact(t *testing.T) {
	c, body, ground := newTestController(DefaultParams())

	body.vel = physics.Vec3{Y: 2}
	c.Step(0, fixedDt)
	ground.grounded = true
	if res := c.Step(fixedDt, fixedDt); res.Landing.Occurred {
		t.Fatalf("landing reported while moving up")
	}
}

func TestScenario_BhopChainClampsAtMaxBonus(t *testing.T) {
	p := noDecayParams()
	p.MoveSpeed = 6
	p.BonusPerHop = 0.75
	p.MaxBonus = 3
	p.BhopWindow = 0.12
	c, body, ground := newTestController(p)
	forward := physics.Vec2{Y: 1}

	want := []float64{0.75, 1.5, 2.25, 3.0, 3.0}
	now := 0.0
	for i, w := range want {
		ground.grounded = false
		steer(c, forward, 0)
		c.Step(now, fixedDt)
		now += 1.0

		body.vel = physics.Vec3{}
		ground.grounded = true
		pressJump(c, forward, now-0.05)
		res := c.Step(now, fixedDt)
		now += fixedDt

		if res.Hop != HopQualified {
			t.Fatalf("hop %d outcome = %v, want qualified", i+1, res.Hop)
		}
		approxEqual(t, c.BonusSpeed(), w, 1e-12, "bonus after hop")
		if n := len(body.impulses); n != i+1 {
			t.Fatalf("impulses = %d, want %d", n, i+1)
		}
		approxEqual(t, body.vel.Y, p.JumpImpulse, 1e-12, "vel.y after jump")
	}
}

func TestScenario_MissedWindowResetsChain(t *testing.T) {
	c, body, ground := newTestController(noDecayParams())
	forward := physics.Vec2{Y: 1}

	c.Step(0, fixedDt)
	c.momentum.BonusSpeed = 2.0

	ground.grounded = true
	now := 1.0
	pressJump(c, forward, now-0.2)
	res := c.Step(now, fixedDt)

	if res.Hop != HopReset {
		t.Fatalf("outcome = %v, want reset", res.Hop)
	}
	approxEqual(t, c.BonusSpeed(), 0, 0, "bonus")
	approxEqual(t, body.vel.Horizontal().Len(), 6, 1e-9, "horizontal speed")
	approxEqual(t, body.vel.Y, 5, 1e-12, "vel.y")
}

func TestScenario_StandingJumpResetsChain(t *testing.T) {
	c, body, ground := newTestController(noDecayParams())
	c.momentum.BonusSpeed = 1.5
	ground.grounded = true

	pressJump(c, physics.Vec2{}, 0)
	res := c.Step(0, fixedDt)

	if res.Hop != HopReset {
		t.Fatalf("outcome = %v, want reset", res.Hop)
	}
	approxEqual(t, c.BonusSpeed(), 0, 0, "bonus")
	if len(body.impulses) != 1 {
		t.Fatalf("impulses = %d, want 1", len(body.impulses))
	}
}

func TestHardReset_IsIdempotentBelowBaseSpeed(t *testing.T) {
	c, body, _ := newTestController(DefaultParams())

	body.vel = physics.Vec3{X: 3, Y: 2, Z: 4}
	c.hardReset()
	c.hardReset()
	if body.vel != (physics.Vec3{X: 3, Y: 2, Z: 4}) {
		t.Fatalf("vel = %+v, want unchanged", body.vel)
	}

	body.vel = physics.Vec3{X: 6, Y: -1, Z: 8}
	c.hardReset()
	approxEqual(t, body.vel.X, 3.6, 1e-12, "vel.x")
	approxEqual(t, body.vel.Z, 4.8, 1e-12, "vel.z")
	approxEqual(t, body.vel.Y, -1, 0, "vel.y")
	approxEqual(t, c.BonusSpeed(), 0, 0, "bonus")
}

func TestNonQualifyingJump_WithoutBonusKeepsSpeed(t *testing.T) {
	tests := []struct {
		name      string
		move      physics.Vec2
		wantSpeed float64
	}{
		{"late intent while running", physics.Vec2{Y: 1}, DefaultParams().MoveSpeed},
		{"standing still", physics.Vec2{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, body, ground := newTestController(noDecayParams())
			ground.grounded = true

			for i := 0; i < 2; i++ {
				pressAt := 0.2 * float64(i)
				stepAt := pressAt + 0.2
				pressJump(c, tt.move, pressAt)
				res := c.Step(stepAt, fixedDt)

				if res.Hop != HopReset {
					t.Fatalf("jump %d outcome = %v, want reset", i, res.Hop)
				}
				approxEqual(t, c.BonusSpeed(), 0, 0, "bonus")
				approxEqual(t, body.vel.Horizontal().Len(), tt.wantSpeed, 1e-12, "horizontal speed")
			}
			if len(body.impulses) != 2 {
				t.Fatalf("impulses = %d, want 2", len(body.impulses))
			}
		})
	}
}

func TestGraceExpiry_ResetsOncePerLanding(t *testing.T) {
	c, body, ground := newTestController(noDecayParams())
	c.momentum.BonusSpeed = 2
	ground.grounded = true
	body.vel = physics.Vec3{Z: 8}

	expired := 0
	for i := 0; i <= 20; i++ {
		res := c.Step(float64(i)*fixedDt, fixedDt)
		if res.GraceExpired {
			expired++
			if float64(i)*fixedDt <= DefaultParams().BhopWindow {
				t.Fatalf("grace expired early at step %d", i)
			}
		}
	}
	if expired != 1 {
		t.Fatalf("grace expired %d times, want 1", expired)
	}
	approxEqual(t, c.BonusSpeed(), 0, 0, "bonus")
	if !c.Momentum().PunishedThisLanding {
		t.Fatalf("punished flag not set")
	}
}

func TestGraceExpiry_LeavingGroundRearms(t *testing.T) {
	c, _, ground := newTestController(noDecayParams())
	ground.grounded = true
	for i := 0; i < 10; i++ {
		c.Step(float64(i)*fixedDt, fixedDt)
	}
	if !c.Momentum().PunishedThisLanding {
		t.Fatalf("punished flag not set after grace")
	}
	ground.grounded = false
	c.Step(0.5, fixedDt)
	if c.Momentum().PunishedThisLanding {
		t.Fatalf("punished flag survived leaving the ground")
	}
}

// A fresh, timely jump on the step the grace period runs out is a hop, not a
// missed window: the jump rule runs first and marks the landing handled.
func TestJumpTakesPrecedenceOverGraceOnSameStep(t *testing.T) {
	c, _, ground := newTestController(noDecayParams())
	forward := physics.Vec2{Y: 1}
	c.momentum.BonusSpeed = 2

	c.Step(-fixedDt, fixedDt)
	ground.grounded = true
	steer(c, forward, 0)
	c.Step(0, fixedDt)

	pressJump(c, forward, 0.13)
	res := c.Step(0.13, fixedDt)

	if res.Hop != HopQualified || res.GraceExpired {
		t.Fatalf("hop = %v grace = %t, want qualified without grace", res.Hop, res.GraceExpired)
	}
	approxEqual(t, c.BonusSpeed(), 2.75, 1e-12, "bonus")
}

// Once the grace penalty was paid, a later timely jump still earns one hop
// from zero.
func TestJumpAfterGracePenaltyStartsNewChain(t *testing.T) {
	c, _, ground := newTestController(noDecayParams())
	forward := physics.Vec2{Y: 1}
	c.momentum.BonusSpeed = 2

	c.Step(-fixedDt, fixedDt)
	ground.grounded = true
	steer(c, forward, 0)
	for now := 0.0; now < 0.3; now += fixedDt {
		c.Step(now, fixedDt)
	}
	approxEqual(t, c.BonusSpeed(), 0, 0, "bonus after grace")

	pressJump(c, forward, 0.3)
	res := c.Step(0.3, fixedDt)
	if res.Hop != HopQualified {
		t.Fatalf("hop = %v, want qualified", res.Hop)
	}
	approxEqual(t, c.BonusSpeed(), 0.75, 1e-12, "bonus")
}

func TestJumpIntent_BufferedBeforeTouchdown(t *testing.T) {
	tests := []struct {
		name     string
		pressAt  float64
		wantHop  HopOutcome
		wantJump bool
	}{
		{"inside window", 0.92, HopQualified, true},
		{"expired before landing", 0.8, HopNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, body, ground := newTestController(noDecayParams())
			forward := physics.Vec2{Y: 1}

			now := tt.pressAt
			pressJump(c, forward, now)
			for ; now < 1.0; now += fixedDt {
				c.Step(now, fixedDt)
			}
			ground.grounded = true
			steer(c, forward, 0)
			res := c.Step(1.0, fixedDt)

			if res.Hop != tt.wantHop {
				t.Fatalf("hop = %v, want %v", res.Hop, tt.wantHop)
			}
			if jumped := len(body.impulses) > 0; jumped != tt.wantJump {
				t.Fatalf("jumped = %t, want %t", jumped, tt.wantJump)
			}
		})
	}
}

func TestJumpIntent_ConsumedByOneJump(t *testing.T) {
	c, body, ground := newTestController(noDecayParams())
	ground.grounded = true

	pressJump(c, physics.Vec2{Y: 1}, 0)
	c.Step(0, fixedDt)
	// Still touching the ground on the next tick while rising.
	c.Step(fixedDt, fixedDt)

	if len(body.impulses) != 1 {
		t.Fatalf("impulses = %d, want 1", len(body.impulses))
	}
	approxEqual(t, c.BonusSpeed(), 0.75, 1e-12, "bonus")
}

func TestHoldToJump_RegistersEveryFrame(t *testing.T) {
	p := noDecayParams()
	p.HoldToJump = true
	c, body, ground := newTestController(p)
	ground.grounded = true

	for i := 0; i < 3; i++ {
		now := float64(i) * 0.5
		c.SampleInput(FrameInputs{Move: physics.Vec2{Y: 1}, JumpHeld: true, Time: now})
		c.FinalizeDirection(0)
		c.Step(now, fixedDt)
	}
	if len(body.impulses) != 3 {
		t.Fatalf("impulses = %d, want 3", len(body.impulses))
	}
	approxEqual(t, c.LastJumpIntent(), 1.0, 0, "last jump intent")
}

func TestDecay_GroundedBleedsFasterThanAir(t *testing.T) {
	c, body, ground := newTestController(DefaultParams())
	c.momentum.BonusSpeed = 2
	c.Step(0, fixedDt)
	airLoss := 2 - c.BonusSpeed()
	approxEqual(t, airLoss, 0.5*fixedDt, 1e-12, "air loss")

	ground.grounded = true
	body.vel = physics.Vec3{}
	steer(c, physics.Vec2{Y: 1}, 0)
	before := c.BonusSpeed()
	c.Step(fixedDt, fixedDt)
	speed := 6 + before
	wantLoss := (1.5+speed*0.3)*fixedDt + 0.5*fixedDt
	approxEqual(t, before-c.BonusSpeed(), wantLoss, 1e-12, "ground loss")
}

func TestBhopWindowOpen(t *testing.T) {
	c, _, ground := newTestController(DefaultParams())
	ground.grounded = true
	c.Step(1.0, fixedDt)

	if !c.BhopWindowOpen(1.1) {
		t.Fatalf("window closed 0.1s after landing")
	}
	if c.BhopWindowOpen(1.2) {
		t.Fatalf("window open 0.2s after landing")
	}
}

func TestStep_MissingCollaborators(t *testing.T) {
	c := NewController(DefaultParams(), nil, nil)
	steer(c, physics.Vec2{Y: 1}, 0)
	if res := c.Step(0, fixedDt); res.Grounded || res.Hop != HopNone {
		t.Fatalf("nil body step = %+v, want empty", res)
	}

	body := &fakeBody{}
	c = NewController(DefaultParams(), body, nil)
	steer(c, physics.Vec2{Y: 1}, 0)
	if res := c.Step(0, fixedDt); res.Grounded {
		t.Fatalf("nil probe reported grounded")
	}
	approxEqual(t, body.vel.Z, 1.2, 1e-12, "air kick without probe")
}

func TestStep_ProbesFootPointOncePerStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := mocks.NewMockGroundProbe(ctrl)

	p := DefaultParams()
	p.FootOffset = 0.5
	p.GroundCheckRadius = 0.25
	body := &fakeBody{pos: physics.Vec3{X: 1, Y: 2, Z: 3}}
	c := NewController(p, body, probe)

	probe.EXPECT().
		Contact(physics.Vec3{X: 1, Y: 1.5, Z: 3}, 0.25, physics.LayerWorld).
		Return(true).
		Times(2)

	c.Step(0, fixedDt)
	c.Step(fixedDt, fixedDt)
}

func TestStep_JumpZeroesVerticalThenImpulses(t *testing.T) {
	ctrl := gomock.NewController(t)
	body := mocks.NewMockBody(ctrl)
	ground := &fakeGround{grounded: true}
	c := NewController(noDecayParams(), body, ground)

	vel := physics.Vec3{Y: -3}
	body.EXPECT().Position().Return(physics.Vec3{}).AnyTimes()
	body.EXPECT().Velocity().DoAndReturn(func() physics.Vec3 { return vel }).AnyTimes()
	gomock.InOrder(
		body.EXPECT().SetVelocity(gomock.Any()).Do(func(v physics.Vec3) { vel = v }),
		body.EXPECT().SetVelocity(physics.Vec3{Z: 6}).Do(func(v physics.Vec3) { vel = v }),
		body.EXPECT().AddImpulse(physics.Vec3{Y: 5}),
	)

	pressJump(c, physics.Vec2{Y: 1}, 0)
	if res := c.Step(0, fixedDt); res.Hop != HopQualified {
		t.Fatalf("hop = %v, want qualified", res.Hop)
	}
}
