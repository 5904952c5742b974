package weapon

// TriggerInput is the fire button sampled for one frame.
type TriggerInput struct {
	Held     bool
	Pressed  bool
	Released bool
}

// GateState is the fire gate carried between frames.
type GateState struct {
	NextAllowedFire float64
	TriggerLocked   bool
}

// FireGate rate-limits and edge-triggers shots. In semi-auto with
// RequireReleaseInSemi a shot locks the trigger until a release edge, no
// matter how long ago it fired.
type FireGate struct {
	params FireParams
	state  GateState
}

func NewFireGate(params FireParams) *FireGate {
	return &FireGate{params: params}
}

// Update reports whether a shot fires at time now and advances the gate when
// it does.
func (g *FireGate) Update(now float64, in TriggerInput) bool {
	wants := in.Pressed
	if g.params.Automatic {
		wants = in.Held
	}

	lockable := !g.params.Automatic && g.params.RequireReleaseInSemi
	if lockable {
		if in.Released {
			g.state.TriggerLocked = false
		}
		if g.state.TriggerLocked {
			wants = false
		}
	}

	if !wants || now < g.state.NextAllowedFire {
		return false
	}
	g.state.NextAllowedFire = now + g.params.MinDelay()
	if lockable {
		g.state.TriggerLocked = true
	}
	return true
}

func (g *FireGate) State() GateState {
	return g.state
}
