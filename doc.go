// Package orbit rotates and zooms a displayed 3D model from mouse, wheel and
// touch gestures with damped motion, for games and viewers built on
// [Ebitengine] or any other renderer.
//
// Input never writes the model's rotation directly. A drag moves a target
// rotation, and every frame the displayed rotation covers a fixed fraction of
// the remaining distance, so motion decelerates smoothly and settles once it
// is within a small dead zone. Wheel and pinch gestures scale the model by a
// constant factor per step, clamped to configured limits.
//
// # Quick start
//
//	model := orbit.NewModel()
//	ctrl, err := orbit.New(model, orbit.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	input := orbit.NewInput(ctrl)
//
//	func (g *Game) Update() error {
//		g.input.Poll()
//		g.ctrl.Update()
//		return nil
//	}
//
// Draw with model.Matrix(). Any node type can be controlled by implementing
// [SceneNode].
//
// # Gestures
//
// A single pointer or touch contact drags the target rotation. Horizontal
// motion yaws the model and vertical motion pitches it, with pitch clamped to
// [Config.RotateXDownLimit, Config.RotateXUpLimit]. Two contacts pinch-zoom;
// after each pinch move, single-contact rotation is locked out for
// [Config.DebounceMillis] so lifting one finger does not read as a drag.
//
// While idle with [Config.EnableAutoRotate], the model yaws slowly and the
// target follows it, so the next drag starts where the model is.
//
// # Zoom observers
//
// [Control.OnZoom] and [Config.ZoomCallBack] are called only for steps that
// stayed within limits. Steps that hit a limit are clamped silently.
//
// # Views
//
// [Control.SaveView] captures rotation and scale; [Control.RestoreView] eases
// back to it, tweening the scale with gween.
//
// # Scripted input
//
// [Input.InjectDrag], [Input.InjectPinch] and friends queue synthetic events
// consumed one per tick. [LoadTestScript] reads a JSON list of such gestures:
//
//	{"steps": [
//		{"action": "drag", "fromX": 400, "fromY": 300, "toX": 500, "toY": 300, "frames": 10},
//		{"action": "wait", "frames": 30},
//		{"action": "pinch", "x": 400, "y": 300, "fromDist": 100, "toDist": 200, "frames": 8}
//	]}
//
// # ECS integration
//
// The ecs sub-package publishes [GestureEvent] values into a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
package orbit
