package aip

import (
	"github.com/pkg/errors"
	"github.com/rminderhoud/Revise/rose/rbytes"
)

type (
	// Variant pairs a registry name with a factory producing fresh records
	// of one tagged type.
	Variant struct {
		Name    string
		Factory func() Record
	}

	// Registry is a closed mapping from tag values to record variants.
	// Both shipped registries are populated once at package init and never
	// mutated afterwards.
	Registry struct {
		factories map[Tag]func() Record
		names     map[Tag]string
		tags      map[string]Tag
	}
)

var (
	Conditions = NewRegistry(
		Variant{Name: "check_zone_time", Factory: func() Record { return &CheckZoneTime{} }},
		Variant{Name: "check_health_percent", Factory: func() Record { return &CheckHealthPercent{} }},
		Variant{Name: "check_random_chance", Factory: func() Record { return &CheckRandomChance{} }},
		Variant{Name: "check_target_distance", Factory: func() Record { return &CheckTargetDistance{} }},
	)
	Actions = NewRegistry(
		Variant{Name: "say", Factory: func() Record { return &Say{} }},
		Variant{Name: "move_to", Factory: func() Record { return &MoveTo{} }},
		Variant{Name: "cast_spell", Factory: func() Record { return &CastSpell{} }},
		Variant{Name: "wait", Factory: func() Record { return &Wait{} }},
	)
)

func NewRegistry(variants ...Variant) *Registry {
	registry := &Registry{
		factories: map[Tag]func() Record{},
		names:     map[Tag]string{},
		tags:      map[string]Tag{},
	}
	for _, variant := range variants {
		tag := variant.Factory().Tag()
		registry.factories[tag] = variant.Factory
		registry.names[tag] = variant.Name
		registry.tags[variant.Name] = tag
	}
	return registry
}

// Decode reads one tagged record: the tag itself, then the payload of the
// variant the tag selects. Every decode constructs a fresh record.
func (r *Registry) Decode(reader *rbytes.Reader) (Record, error) {
	value, err := reader.ReadInt()
	if err != nil {
		return nil, errors.Wrap(err, "Decode error: read record tag")
	}
	factory, ok := r.factories[Tag(value)]
	if !ok {
		return nil, ErrUnknownTag{Tag: Tag(value)}
	}
	record := factory()
	if err := record.DecodePayload(reader); err != nil {
		return nil, errors.Wrapf(err, `Decode error: read "%s" payload`, r.names[Tag(value)])
	}
	return record, nil
}

// Encode writes the record's own tag, then its payload.
func (r *Registry) Encode(writer *rbytes.Writer, record Record) {
	writer.WriteInt(int32(record.Tag()))
	record.EncodePayload(writer)
}

// Name returns the name the variant behind tag was registered under.
func (r *Registry) Name(tag Tag) (string, error) {
	name, ok := r.names[tag]
	if !ok {
		return "", ErrUnknownTag{Tag: tag}
	}
	return name, nil
}

// Create constructs a fresh record of the variant registered under name.
func (r *Registry) Create(name string) (Record, error) {
	tag, ok := r.tags[name]
	if !ok {
		return nil, ErrUnknownTypeName{Name: name}
	}
	return r.factories[tag](), nil
}
