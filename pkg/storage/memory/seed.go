package memory

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/nsyszr/festival/pkg/model"
	"github.com/nsyszr/festival/pkg/storage"
	"github.com/pkg/errors"
)

// document is the layout of the static dataset file
type document struct {
	Apps   []jsonApp   `json:"apps"`
	Stages []jsonStage `json:"stages"`
	Events []jsonEvent `json:"events"`
}

type jsonApp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type jsonStage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type jsonEvent struct {
	ID          string `json:"id"`
	AppID       string `json:"appId"`
	StageID     string `json:"stageId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	StartsAt    int64  `json:"startsAt"`
	EndsAt      int64  `json:"endsAt"`
}

// NewStoreFromFile creates a memory-based Storage interface seeded with the
// dataset at path. Changes are never written back to the file.
func NewStoreFromFile(path string) (storage.Interface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open dataset")
	}
	defer f.Close()

	return NewStoreFromReader(f)
}

// NewStoreFromReader creates a memory-based Storage interface seeded with the
// JSON dataset read from r. Ids and order of the document are kept.
func NewStoreFromReader(r io.Reader) (storage.Interface, error) {
	doc := document{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode dataset")
	}

	s := newStore()

	for _, d := range doc.Apps {
		if err := s.apps.insert(model.App{ID: seedID(d.ID), Name: d.Name}); err != nil {
			return nil, errors.Wrapf(err, "app %s", d.ID)
		}
	}

	for _, d := range doc.Stages {
		if err := s.stages.insert(model.Stage{ID: seedID(d.ID), Name: d.Name}); err != nil {
			return nil, errors.Wrapf(err, "stage %s", d.ID)
		}
	}

	for _, d := range doc.Events {
		if err := checkTimestamps(d); err != nil {
			return nil, errors.Wrapf(err, "event %s", d.ID)
		}
		m := model.Event{
			ID:          seedID(d.ID),
			AppID:       d.AppID,
			StageID:     d.StageID,
			Name:        d.Name,
			Description: d.Description,
			Image:       d.Image,
			StartsAt:    d.StartsAt,
			EndsAt:      d.EndsAt,
		}
		if err := s.events.insert(m); err != nil {
			return nil, errors.Wrapf(err, "event %s", d.ID)
		}
	}

	return s, nil
}

// checkTimestamps rejects times the API cannot serve as a 32 bit Int, e.g.
// epoch milliseconds
func checkTimestamps(d jsonEvent) error {
	if !fitsInt32(d.StartsAt) {
		return errors.Errorf("startsAt %d is not a 32 bit unix timestamp", d.StartsAt)
	}
	if !fitsInt32(d.EndsAt) {
		return errors.Errorf("endsAt %d is not a 32 bit unix timestamp", d.EndsAt)
	}
	return nil
}

func fitsInt32(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

// seedID keeps the id of a document record, records without one get a fresh id
func seedID(id string) string {
	if id != "" {
		return id
	}
	return newID(func(string) bool { return false })
}
