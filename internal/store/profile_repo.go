package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/abhisek/tutord/ent"
	"github.com/abhisek/tutord/ent/learnerdoc"
	"github.com/abhisek/tutord/internal/learner"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Load(ctx context.Context, learnerID string) (*learner.Profile, error) {
	doc, err := r.client.LearnerDoc.Query().
		Where(learnerdoc.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return learner.NewProfile(learnerID), nil
		}
		return nil, fmt.Errorf("query learner %q: %w", learnerID, err)
	}
	return docToProfile(doc.Document)
}

func (r *profileRepo) Save(ctx context.Context, profile *learner.Profile) error {
	doc, err := profileToDoc(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	existing, err := r.client.LearnerDoc.Query().
		Where(learnerdoc.LearnerID(profile.LearnerID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.LearnerDoc.Create().
			SetLearnerID(profile.LearnerID).
			SetDocument(doc).
			Save(ctx)
	case err != nil:
		return fmt.Errorf("query learner %q: %w", profile.LearnerID, err)
	default:
		_, err = existing.Update().
			SetDocument(doc).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save learner %q: %w", profile.LearnerID, err)
	}
	return nil
}

func (r *profileRepo) Learners(ctx context.Context) ([]string, error) {
	ids, err := r.client.LearnerDoc.Query().
		Select(learnerdoc.FieldLearnerID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learners: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// profileToDoc converts a profile to the map form ent stores as JSON.
func profileToDoc(p *learner.Profile) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// docToProfile converts the stored map back into a profile.
func docToProfile(doc map[string]any) (*learner.Profile, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var p learner.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	if p.Topics == nil {
		p.Topics = make(map[string]*learner.TopicState)
	}
	return &p, nil
}
