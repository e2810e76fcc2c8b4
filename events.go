package cloudview

// EventSink is the interface for optional observers of cloud lifecycle
// events, such as an ECS bridge. Events are emitted synchronously from the
// view's setters and update hook.
type EventSink interface {
	EmitCloudEvent(event CloudEvent)
}

// CloudEventType identifies a kind of cloud lifecycle event.
type CloudEventType uint8

const (
	EventPoolRebuilt      CloudEventType = iota // the pool was rebuilt; Count holds the new size
	EventPassScheduled                          // a cloud got a new duration and delay
	EventPassStarted                            // a cloud's delay elapsed and it began moving
	EventPassFinished                           // a cloud reached the left edge
	EventAnimationStarted                       // the view began animating its pool
	EventAnimationStopped                       // the view stopped animating
)

// CloudEvent carries cloud lifecycle data. Fields not relevant to Type are
// zero.
type CloudEvent struct {
	Type       CloudEventType
	ViewID     uint32 // ID of the view's node
	Cloud      CloudID
	Count      int
	DurationMs int
	DelayMs    int
}

// emit forwards an event to the view's sink, if one is set.
func (v *CloudView) emit(ev CloudEvent) {
	if v.sink == nil {
		return
	}
	ev.ViewID = v.node.ID
	v.sink.EmitCloudEvent(ev)
}
