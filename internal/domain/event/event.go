// Package event defines the mutation notifications broadcast to live feed
// subscribers.
package event

import "github.com/google/uuid"

// Kind is the mutation that happened to an entity.
type Kind string

const (
	KindCreate  Kind = "Create"
	KindUpdate  Kind = "Update"
	KindDestroy Kind = "Destroy"
)

// EntityType names the kind of entity that changed.
type EntityType string

const (
	EntityProject EntityType = "Project"
	EntityTask    EntityType = "Task"
)

// UpdateEvent reports that one entity changed. It carries no payload;
// subscribers re-fetch the entity when they need its state.
type UpdateEvent struct {
	Kind       Kind       `json:"kind"`
	EntityType EntityType `json:"entity_type"`
	EntityID   uuid.UUID  `json:"entity_id"`
}

func ProjectCreated(id uuid.UUID) UpdateEvent   { return UpdateEvent{KindCreate, EntityProject, id} }
func ProjectUpdated(id uuid.UUID) UpdateEvent   { return UpdateEvent{KindUpdate, EntityProject, id} }
func ProjectDestroyed(id uuid.UUID) UpdateEvent { return UpdateEvent{KindDestroy, EntityProject, id} }
func TaskCreated(id uuid.UUID) UpdateEvent      { return UpdateEvent{KindCreate, EntityTask, id} }
func TaskUpdated(id uuid.UUID) UpdateEvent      { return UpdateEvent{KindUpdate, EntityTask, id} }
func TaskDestroyed(id uuid.UUID) UpdateEvent    { return UpdateEvent{KindDestroy, EntityTask, id} }
