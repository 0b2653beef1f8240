package types

// AllModels returns every persisted model in declaration order. Migration
// and the schema manifest both iterate this list.
func AllModels() []interface{} {
	return []interface{}{
		// Salon archive
		&SalonSession{},
		&Participant{},
		&Segment{},
		&TaxonomyNode{},

		// Reading group
		&Curriculum{},
		&ReadingSession{},
		&Entry{},
		&SessionEntry{},
		&DiscussionQuestion{},
		&Guide{},

		// Community hub
		&Event{},
		&Contributor{},
		&Contribution{},

		// Syllabus
		&LearnerProfile{},
		&LearningPath{},
		&LearningModule{},
	}
}
