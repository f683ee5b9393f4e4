package analytics

import (
	"sort"
	"time"

	"github.com/claude/jetgym/internal/models"
)

// WeeklyVolumes buckets completed-set volume into weeksBack Monday-start
// weeks ending at the week containing today. The series is ordered oldest
// to newest and each entry carries the percent change from the previous
// week (0 when the previous week had no volume).
func WeeklyVolumes(workouts []models.Workout, today time.Time, weeksBack int) []models.WeeklyVolume {
	currentMonday := mondayOf(today)
	series := make([]models.WeeklyVolume, 0, weeksBack)

	var prevVolume float64
	for i := weeksBack - 1; i >= 0; i-- {
		weekStart := currentMonday.AddDate(0, 0, -7*i)
		weekEnd := weekStart.AddDate(0, 0, 6)

		var volume float64
		for _, w := range workouts {
			if !inRange(w.Date, weekStart, weekEnd) {
				continue
			}
			volume += workoutVolume(w)
		}

		var change float64
		if len(series) > 0 && prevVolume > 0 {
			change = (volume - prevVolume) / prevVolume * 100
		}

		series = append(series, models.WeeklyVolume{
			Week:                   weekLabel(weekStart, weekEnd),
			Volume:                 volume,
			ChangeFromPreviousWeek: change,
		})
		prevVolume = volume
	}

	return series
}

// workoutVolume sums SetVolume over the workout's completed sets.
func workoutVolume(w models.Workout) float64 {
	var total float64
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			if set.Completed {
				total += SetVolume(set)
			}
		}
	}
	return total
}

// MuscleGroupVolumes sums completed-set volume per muscle group across the
// supplied workouts. Exercises without a muscle group are bucketed under
// "Other". The muscleVolumes map is always non-nil.
func MuscleGroupVolumes(workouts []models.Workout) models.MuscleVolume {
	volumes := make(map[string]float64)
	var total float64

	for _, w := range workouts {
		for _, ex := range w.Exercises {
			group := ex.MuscleGroup
			if group == "" {
				group = "Other"
			}
			for _, set := range ex.Sets {
				if !set.Completed {
					continue
				}
				v := SetVolume(set)
				volumes[group] += v
				total += v
			}
		}
	}

	return models.MuscleVolume{MuscleVolumes: volumes, TotalVolume: total}
}

// PersonalRecords finds, per distinct exercise name, the completed
// rep-based set maximizing weight x reps. Time-based sets never rank;
// sets without weight rank at zero. Exercises with no ranking set are
// omitted. Results are sorted by exercise name so output is stable.
//
// IsNewPR is always false: there is no time-ordered comparison against
// earlier records yet.
func PersonalRecords(workouts []models.Workout) []models.PersonalRecord {
	type best struct {
		score  float64
		weight float64
		reps   int
		date   time.Time
		found  bool
	}
	records := make(map[string]best)

	for _, w := range workouts {
		for _, ex := range w.Exercises {
			for _, set := range ex.Sets {
				if !set.Completed || set.IsTimeBased {
					continue
				}
				if set.Value == nil || *set.Value <= 0 {
					continue
				}
				var weight float64
				if set.Weight != nil {
					weight = *set.Weight
				}
				score := weight * float64(*set.Value)

				cur, ok := records[ex.Name]
				if !ok || !cur.found || score > cur.score {
					records[ex.Name] = best{
						score:  score,
						weight: weight,
						reps:   *set.Value,
						date:   dateOnly(w.Date),
						found:  true,
					}
				}
			}
		}
	}

	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]models.PersonalRecord, 0, len(names))
	for _, name := range names {
		b := records[name]
		result = append(result, models.PersonalRecord{
			Exercise: name,
			Weight:   b.weight,
			Reps:     b.reps,
			Date:     b.date,
			IsNewPR:  false,
		})
	}
	return result
}

// WorkoutsPerWeekOfYear counts workouts by ISO week number across the
// trailing weeksBack weeks. Weeks with no workouts are present with a
// zero count.
func WorkoutsPerWeekOfYear(workouts []models.Workout, today time.Time, weeksBack int) map[int]int {
	counts := make(map[int]int, weeksBack)
	for i := 0; i < weeksBack; i++ {
		_, week := dateOnly(today).AddDate(0, 0, -7*i).ISOWeek()
		counts[week] = 0
	}
	for _, w := range workouts {
		_, week := w.Date.ISOWeek()
		counts[week]++
	}
	return counts
}
