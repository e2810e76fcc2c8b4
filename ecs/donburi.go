package ecs

import (
	"github.com/phanxgames/cloudview"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CloudEventType is the Donburi event type for cloudview lifecycle events.
var CloudEventType = events.NewEventType[cloudview.CloudEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on CloudEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) cloudview.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCloudEvent(event cloudview.CloudEvent) {
	CloudEventType.Publish(s.world, event)
}
