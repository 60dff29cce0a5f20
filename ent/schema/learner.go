package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Learner holds the four progression counters for one learner. The
// counters are owned upstream and replaced wholesale on sync.
type Learner struct {
	ent.Schema
}

func (Learner) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("UUID"),
		field.String("name").
			NotEmpty().
			Comment("Display name, unique"),
		field.Int("total_xp").
			NonNegative().
			Default(0),
		field.Int("streak_days").
			NonNegative().
			Default(0).
			Comment("Consecutive active days"),
		field.Int("readiness_score").
			Range(0, 100).
			Default(0),
		field.Int("sessions_completed").
			NonNegative().
			Default(0),
	}
}

// Annotations mirrors the field validators as CHECK constraints so rows
// written outside the repository stay in range.
func (Learner) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Checks(map[string]string{
			"total_xp_non_negative":           "total_xp >= 0",
			"streak_days_non_negative":        "streak_days >= 0",
			"readiness_score_range":           "readiness_score BETWEEN 0 AND 100",
			"sessions_completed_non_negative": "sessions_completed >= 0",
		}),
	}
}

func (Learner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
