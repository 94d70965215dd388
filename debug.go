package spotlight

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logTransition records a state change at debug level. Entries into the
// press and timeout states are logged at info so a production logger shows
// why a prompt went away.
func (p *Prompt) logTransition(from, to State, cause Cause) {
	level := zapcore.DebugLevel
	switch to {
	case StateFocalPressed, StateNonFocalPressed, StateBackButtonPressed, StateShowForTimeout:
		level = zapcore.InfoLevel
	}
	if ce := p.log.Check(level, "state change"); ce != nil {
		ce.Write(
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Stringer("cause", cause),
			zap.Float64("reveal", p.reveal),
		)
	}
}

// debugCheckGeometry warns when the solved background does not reach the
// focal center, which happens when a host feeds text bounds far from the
// target.
func (p *Prompt) debugCheckGeometry() {
	if !p.log.Core().Enabled(zapcore.DebugLevel) {
		return
	}
	c, ok := p.opts.Background.(*CircleBackground)
	if !ok {
		return
	}
	base := c.Base()
	focal := p.layout.Target.Center()
	if d := Distance(base.Center, focal); d > base.Radius {
		p.log.Debug("focal center outside background",
			zap.Float64("distance", d),
			zap.Float64("radius", base.Radius),
		)
	}
}
