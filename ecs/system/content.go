package system

import (
	"log/slog"

	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/ecs/entity"
	"github.com/milk9111/spacezoom/logging"
	"github.com/milk9111/spacezoom/procgen"
)

// ContentSystem mirrors the spawners' records into world entities while the
// camera is in deep space. A category is replaced wholesale whenever its
// spawner regenerates. Leaving deep space removes the entities and drops the
// spawners' memo, so every re-entry draws fresh records.
type ContentSystem struct {
	set    *procgen.Set
	clouds *procgen.CloudCache
	live   map[procgen.Category][]ecs.Entity
	log    *slog.Logger
}

func NewContentSystem(set *procgen.Set, clouds *procgen.CloudCache, logger *slog.Logger) *ContentSystem {
	return &ContentSystem{
		set:    set,
		clouds: clouds,
		live:   make(map[procgen.Category][]ecs.Entity),
		log:    logging.For(logger, "content"),
	}
}

func (s *ContentSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.set == nil {
		return
	}
	_, flight, ok := ecs.First(w, component.FlightComponent.Kind())
	if !ok {
		return
	}
	if !flight.DeepSpace {
		if len(s.live) > 0 {
			s.clear(w)
			s.set.Reset()
		}
		return
	}

	for _, c := range procgen.Categories {
		sp := s.set.Spawner(c)
		if sp == nil {
			continue
		}
		recs, changed := sp.Records(flight.Zoom)
		if _, mirrored := s.live[c]; mirrored && !changed {
			continue
		}
		s.destroy(w, c)

		ents := make([]ecs.Entity, 0, len(recs))
		for _, rec := range recs {
			made, err := entity.NewContent(w, rec, s.clouds)
			if err != nil {
				s.log.Error("spawn content", "category", c, "index", rec.Index, "err", err)
				continue
			}
			ents = append(ents, made...)
		}
		s.live[c] = ents
		s.log.Debug("content regenerated", "category", c, "count", len(recs), "bucket", sp.Bucket())
		w.Events().Push(ecs.Event{Type: ecs.EventContentRegenerated, Data: ecs.ContentRegenerated{
			Category: string(c),
			Count:    len(recs),
			Bucket:   sp.Bucket(),
		}})
	}
}

// Invalidate drops the mirrored entities so the next deep-space frame
// rebuilds every category, e.g. after the rules were reloaded.
func (s *ContentSystem) Invalidate(w *ecs.World) {
	if s == nil {
		return
	}
	s.clear(w)
}

func (s *ContentSystem) clear(w *ecs.World) {
	for c := range s.live {
		s.destroy(w, c)
	}
}

func (s *ContentSystem) destroy(w *ecs.World, c procgen.Category) {
	for _, e := range s.live[c] {
		ecs.DestroyEntity(w, e)
	}
	delete(s.live, c)
}
