// internal/system/season.go
package system

import (
	"go-season-defense/internal/component"
	"go-season-defense/internal/config"
	"go-season-defense/internal/event"
	"go-season-defense/internal/logger"
	"go-season-defense/internal/utils"

	"github.com/sirupsen/logrus"
)

// SeasonSystem ведёт расписание сезонов.
// Когда последний интервал истекает, один раз сообщается победа.
type SeasonSystem struct {
	intervals       []config.SeasonInterval
	eventDispatcher *event.Dispatcher

	index     int
	remaining float64 // до конца текущего интервала
	elapsed   float64 // с начала расписания
	total     float64
	finished  bool
}

func NewSeasonSystem(intervals []config.SeasonInterval, eventDispatcher *event.Dispatcher) *SeasonSystem {
	s := &SeasonSystem{
		intervals:       intervals,
		eventDispatcher: eventDispatcher,
	}
	for _, in := range intervals {
		s.total += in.Duration
	}
	if len(intervals) > 0 {
		s.remaining = intervals[0].Duration
	} else {
		s.finished = true
	}
	return s
}

// Current — вид активного сезона. После окончания расписания остаётся последний.
func (s *SeasonSystem) Current() component.SeasonKind {
	if len(s.intervals) == 0 {
		return component.SeasonBuild
	}
	return s.intervals[min(s.index, len(s.intervals)-1)].Kind
}

// Index — номер активного интервала
func (s *SeasonSystem) Index() int {
	return s.index
}

// Finished — расписание пройдено
func (s *SeasonSystem) Finished() bool {
	return s.finished
}

// Remaining — секунд до конца активного интервала
func (s *SeasonSystem) Remaining() float64 {
	if s.finished {
		return 0
	}
	return s.remaining
}

// IntervalFraction — пройденная доля активного интервала, [0, 1]
func (s *SeasonSystem) IntervalFraction() float64 {
	if s.finished {
		return 1
	}
	d := s.intervals[s.index].Duration
	return utils.Fraction(d-s.remaining, d)
}

// TotalFraction — пройденная доля всего расписания, [0, 1]
func (s *SeasonSystem) TotalFraction() float64 {
	if s.finished {
		return 1
	}
	return utils.Fraction(s.elapsed, s.total)
}

// Intervals — расписание целиком (для полосы сезонов)
func (s *SeasonSystem) Intervals() []config.SeasonInterval {
	return s.intervals
}

// Update отсчитывает время. Возвращает true ровно в том тике, когда расписание закончилось.
// Перебор времени переносится в следующий интервал.
func (s *SeasonSystem) Update(deltaTime float64) bool {
	if s.finished {
		return false
	}
	s.elapsed += deltaTime
	s.remaining -= deltaTime

	for s.remaining <= 0 {
		from := s.intervals[s.index].Kind
		if s.index+1 >= len(s.intervals) {
			s.finished = true
			s.remaining = 0
			logger.Log.WithField("season", from).Info("all seasons completed")
			s.eventDispatcher.Emit(event.SeasonsCompleted, nil)
			return true
		}

		s.index++
		s.remaining += s.intervals[s.index].Duration
		to := s.intervals[s.index].Kind

		logger.Log.WithFields(logrus.Fields{
			"from":  from,
			"to":    to,
			"index": s.index,
		}).Info("season changed")
		s.eventDispatcher.Emit(event.SeasonChanged, event.SeasonData{From: from, To: to, Index: s.index})
	}
	return false
}
