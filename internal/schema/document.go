package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Document is a file attached to a patient. The stored filename is always
// server-assigned (random token + original extension), never the name the
// client supplied.
type Document struct {
	ent.Schema
}

func (Document) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK -> patients.id"),

		field.String("title").
			NotEmpty().
			MaxLen(200),

		field.String("document_type").
			Optional().
			Nillable().
			MaxLen(100),

		field.Text("description").
			Optional().
			Nillable(),

		field.String("filename").
			NotEmpty().
			Unique().
			MaxLen(255).
			Comment("Storage key under the upload root"),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("documents").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
	}
}
