// Package seed loads the JSON seed corpus into the database. Each seeder is
// idempotent on a natural key (slug, title+date, title+author,
// github_handle) so re-running against a seeded database inserts nothing.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/koinonia-backend/internal/logger"
	"github.com/yungbote/koinonia-backend/internal/types"
)

type Loader struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLoader(db *gorm.DB, baseLog *logger.Logger) *Loader {
	return &Loader{db: db, log: baseLog.With("component", "SeedLoader")}
}

// LoadAll runs every seeder in one transaction and returns the number of
// rows touched (inserted or already present).
func (l *Loader) LoadAll(ctx context.Context, dir string) (int, error) {
	total := 0
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := l.seedTaxonomy(ctx, tx, dir)
		if err != nil {
			return fmt.Errorf("seed taxonomy: %w", err)
		}
		total += n

		n, err = l.seedSalonSessions(ctx, tx, dir)
		if err != nil {
			return fmt.Errorf("seed salon sessions: %w", err)
		}
		total += n

		keyMap, n, err := l.seedEntries(ctx, tx, dir)
		if err != nil {
			return fmt.Errorf("seed reading entries: %w", err)
		}
		total += n

		n, err = l.seedCurricula(ctx, tx, dir, keyMap)
		if err != nil {
			return fmt.Errorf("seed curricula: %w", err)
		}
		total += n

		n, err = l.seedCommunity(ctx, tx, dir)
		if err != nil {
			return fmt.Errorf("seed community: %w", err)
		}
		total += n

		return nil
	})
	if err != nil {
		return 0, err
	}
	l.log.Info("Seed load complete", "rows", total, "dir", dir)
	return total, nil
}

type taxonomyDoc struct {
	Nodes []struct {
		Slug        string `json:"slug"`
		Label       string `json:"label"`
		OrganID     *uint  `json:"organ_id"`
		Description string `json:"description"`
		Children    []struct {
			Slug        string `json:"slug"`
			Label       string `json:"label"`
			Description string `json:"description"`
		} `json:"children"`
	} `json:"nodes"`
}

func (l *Loader) seedTaxonomy(ctx context.Context, tx *gorm.DB, dir string) (int, error) {
	var doc taxonomyDoc
	if err := loadJSON(dir, "taxonomy.json", &doc); err != nil {
		return 0, err
	}
	count := 0
	for _, node := range doc.Nodes {
		root := types.TaxonomyNode{
			Slug:        node.Slug,
			Label:       node.Label,
			OrganID:     node.OrganID,
			Description: node.Description,
		}
		if err := tx.WithContext(ctx).
			Where(types.TaxonomyNode{Slug: node.Slug}).
			FirstOrCreate(&root).Error; err != nil {
			return count, err
		}
		count++
		for _, child := range node.Children {
			parentID := root.ID
			row := types.TaxonomyNode{
				Slug:        child.Slug,
				Label:       child.Label,
				ParentID:    &parentID,
				Description: child.Description,
			}
			if err := tx.WithContext(ctx).
				Where(types.TaxonomyNode{Slug: child.Slug}).
				FirstOrCreate(&row).Error; err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

type salonSessionDoc struct {
	Sessions []struct {
		Title        string   `json:"title"`
		Date         string   `json:"date"`
		Format       string   `json:"format"`
		Facilitator  string   `json:"facilitator"`
		Notes        string   `json:"notes"`
		OrganTags    []string `json:"organ_tags"`
		Participants []struct {
			Name         string `json:"name"`
			Role         string `json:"role"`
			ConsentGiven bool   `json:"consent_given"`
		} `json:"participants"`
		Segments []struct {
			Speaker      string  `json:"speaker"`
			Text         string  `json:"text"`
			StartSeconds float64 `json:"start_seconds"`
			EndSeconds   float64 `json:"end_seconds"`
			Confidence   float64 `json:"confidence"`
		} `json:"segments"`
	} `json:"sessions"`
}

func (l *Loader) seedSalonSessions(ctx context.Context, tx *gorm.DB, dir string) (int, error) {
	var doc salonSessionDoc
	if err := loadJSON(dir, "sample_sessions.json", &doc); err != nil {
		return 0, err
	}
	count := 0
	for _, session := range doc.Sessions {
		date, err := parseDate(session.Date)
		if err != nil {
			return count, fmt.Errorf("session %q: %w", session.Title, err)
		}

		// title+date is the natural key
		var existing types.SalonSession
		err = tx.WithContext(ctx).
			Where("title = ? AND date = ?", session.Title, date).
			First(&existing).Error
		if err == nil {
			count++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return count, err
		}

		format := session.Format
		if format == "" {
			format = "deep_dive"
		}
		row := types.SalonSession{
			Title:       session.Title,
			Date:        date,
			Format:      format,
			Facilitator: session.Facilitator,
			Notes:       session.Notes,
			OrganTags:   datatypes.NewJSONSlice(session.OrganTags),
		}
		if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
			return count, err
		}
		count++

		for _, p := range session.Participants {
			role := p.Role
			if role == "" {
				role = "participant"
			}
			participant := types.Participant{
				SessionID:    row.ID,
				Name:         p.Name,
				Role:         role,
				ConsentGiven: p.ConsentGiven,
			}
			if err := tx.WithContext(ctx).Create(&participant).Error; err != nil {
				return count, err
			}
			count++
		}

		for _, seg := range session.Segments {
			segment := types.Segment{
				SessionID:    row.ID,
				Speaker:      seg.Speaker,
				Text:         seg.Text,
				StartSeconds: seg.StartSeconds,
				EndSeconds:   seg.EndSeconds,
				Confidence:   seg.Confidence,
			}
			if err := tx.WithContext(ctx).Create(&segment).Error; err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

type readingListDoc struct {
	Entries []struct {
		Key        string   `json:"key"`
		Title      string   `json:"title"`
		Author     string   `json:"author"`
		SourceType string   `json:"source_type"`
		URL        string   `json:"url"`
		Pages      string   `json:"pages"`
		Difficulty string   `json:"difficulty"`
		OrganTags  []string `json:"organ_tags"`
	} `json:"entries"`
}

// seedEntries loads the reading catalog and returns a key->id map used to
// link curriculum sessions to entries.
func (l *Loader) seedEntries(ctx context.Context, tx *gorm.DB, dir string) (map[string]uint, int, error) {
	var doc readingListDoc
	if err := loadJSON(dir, "reading_lists.json", &doc); err != nil {
		return nil, 0, err
	}
	keyMap := map[string]uint{}
	count := 0
	for _, entry := range doc.Entries {
		var existing types.Entry
		err := tx.WithContext(ctx).
			Where("title = ? AND author = ?", entry.Title, entry.Author).
			First(&existing).Error
		if err == nil {
			keyMap[entry.Key] = existing.ID
			count++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return keyMap, count, err
		}

		sourceType := entry.SourceType
		if sourceType == "" {
			sourceType = "book"
		}
		difficulty := entry.Difficulty
		if difficulty == "" {
			difficulty = types.DifficultyIntermediate
		}
		row := types.Entry{
			Title:      entry.Title,
			Author:     entry.Author,
			SourceType: sourceType,
			URL:        entry.URL,
			Pages:      entry.Pages,
			Difficulty: difficulty,
			OrganTags:  datatypes.NewJSONSlice(entry.OrganTags),
		}
		if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
			return keyMap, count, err
		}
		keyMap[entry.Key] = row.ID
		count++
	}
	return keyMap, count, nil
}

type curriculaDoc struct {
	Curricula []struct {
		Title         string `json:"title"`
		Theme         string `json:"theme"`
		OrganFocus    string `json:"organ_focus"`
		DurationWeeks int    `json:"duration_weeks"`
		Description   string `json:"description"`
		Sessions      []struct {
			Week       int      `json:"week"`
			Title      string   `json:"title"`
			Readings   []string `json:"readings"`
			Questions  []string `json:"questions"`
			Activities []string `json:"activities"`
		} `json:"sessions"`
	} `json:"curricula"`
}

func (l *Loader) seedCurricula(ctx context.Context, tx *gorm.DB, dir string, entryKeyMap map[string]uint) (int, error) {
	var doc curriculaDoc
	if err := loadJSON(dir, "curricula.json", &doc); err != nil {
		return 0, err
	}
	count := 0
	for _, c := range doc.Curricula {
		var existing types.Curriculum
		err := tx.WithContext(ctx).
			Where("title = ?", c.Title).
			First(&existing).Error
		if err == nil {
			count++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return count, err
		}

		theme := c.Theme
		if theme == "" {
			theme = "general"
		}
		curriculum := types.Curriculum{
			Title:         c.Title,
			Theme:         theme,
			OrganFocus:    c.OrganFocus,
			DurationWeeks: c.DurationWeeks,
			Description:   c.Description,
		}
		if err := tx.WithContext(ctx).Create(&curriculum).Error; err != nil {
			return count, err
		}
		count++

		for _, s := range c.Sessions {
			session := types.ReadingSession{
				CurriculumID: curriculum.ID,
				Week:         s.Week,
				Title:        s.Title,
			}
			if err := tx.WithContext(ctx).Create(&session).Error; err != nil {
				return count, err
			}
			count++

			for _, readingKey := range s.Readings {
				entryID, ok := entryKeyMap[readingKey]
				if !ok {
					continue
				}
				link := types.SessionEntry{SessionID: session.ID, EntryID: entryID}
				if err := tx.WithContext(ctx).
					Where(link).
					FirstOrCreate(&link).Error; err != nil {
					return count, err
				}
			}

			for _, q := range s.Questions {
				question := types.DiscussionQuestion{
					SessionID:    session.ID,
					QuestionText: q,
					Category:     "deep_dive",
				}
				if err := tx.WithContext(ctx).Create(&question).Error; err != nil {
					return count, err
				}
				count++
			}

			if len(s.Activities) > 0 {
				opening := s.Questions
				deepDive := []string{}
				if len(opening) > 2 {
					deepDive = opening[2:]
					opening = opening[:2]
				}
				guide := types.Guide{
					SessionID:         session.ID,
					OpeningQuestions:  datatypes.NewJSONSlice(opening),
					DeepDiveQuestions: datatypes.NewJSONSlice(deepDive),
					Activities:        datatypes.NewJSONSlice(s.Activities),
				}
				if err := tx.WithContext(ctx).Create(&guide).Error; err != nil {
					return count, err
				}
				count++
			}
		}
	}
	return count, nil
}

type communityDoc struct {
	Events []struct {
		Type        string `json:"type"`
		Title       string `json:"title"`
		Date        string `json:"date"`
		Description string `json:"description"`
		Format      string `json:"format"`
		Capacity    *int   `json:"capacity"`
		Status      string `json:"status"`
	} `json:"events"`
	Contributors []struct {
		GithubHandle          string   `json:"github_handle"`
		Name                  string   `json:"name"`
		OrgansActive          []string `json:"organs_active"`
		FirstContributionDate string   `json:"first_contribution_date"`
		Contributions         []struct {
			Repo        string `json:"repo"`
			Type        string `json:"type"`
			URL         string `json:"url"`
			Date        string `json:"date"`
			Description string `json:"description"`
		} `json:"contributions"`
	} `json:"contributors"`
}

func (l *Loader) seedCommunity(ctx context.Context, tx *gorm.DB, dir string) (int, error) {
	var doc communityDoc
	if err := loadJSON(dir, "community.json", &doc); err != nil {
		return 0, err
	}
	count := 0

	for _, event := range doc.Events {
		date, err := parseDate(event.Date)
		if err != nil {
			return count, fmt.Errorf("event %q: %w", event.Title, err)
		}
		var existing types.Event
		err = tx.WithContext(ctx).
			Where("title = ? AND date = ?", event.Title, date).
			First(&existing).Error
		if err == nil {
			count++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return count, err
		}

		format := event.Format
		if format == "" {
			format = "virtual"
		}
		status := event.Status
		if status == "" {
			status = "planned"
		}
		row := types.Event{
			Type:        event.Type,
			Title:       event.Title,
			Date:        date,
			Description: event.Description,
			Format:      format,
			Capacity:    event.Capacity,
			Status:      status,
		}
		if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
			return count, err
		}
		count++
	}

	for _, contributor := range doc.Contributors {
		var row types.Contributor
		err := tx.WithContext(ctx).
			Where("github_handle = ?", contributor.GithubHandle).
			First(&row).Error
		if err == gorm.ErrRecordNotFound {
			firstDate := time.Now().UTC()
			if contributor.FirstContributionDate != "" {
				firstDate, err = parseDate(contributor.FirstContributionDate)
				if err != nil {
					return count, fmt.Errorf("contributor %q: %w", contributor.GithubHandle, err)
				}
			}
			row = types.Contributor{
				GithubHandle:          contributor.GithubHandle,
				Name:                  contributor.Name,
				OrgansActive:          datatypes.NewJSONSlice(contributor.OrgansActive),
				FirstContributionDate: firstDate,
			}
			if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
				return count, err
			}
		} else if err != nil {
			return count, err
		}
		count++

		for _, c := range contributor.Contributions {
			date, err := parseDate(c.Date)
			if err != nil {
				return count, fmt.Errorf("contribution %q: %w", c.Repo, err)
			}
			var existing types.Contribution
			err = tx.WithContext(ctx).
				Where("contributor_id = ? AND repo = ? AND date = ?", row.ID, c.Repo, date).
				First(&existing).Error
			if err == nil {
				count++
				continue
			}
			if err != gorm.ErrRecordNotFound {
				return count, err
			}
			contribution := types.Contribution{
				ContributorID: row.ID,
				Repo:          c.Repo,
				Type:          c.Type,
				URL:           c.URL,
				Date:          date,
				Description:   c.Description,
			}
			if err := tx.WithContext(ctx).Create(&contribution).Error; err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

func loadJSON(dir, name string, out interface{}) error {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
