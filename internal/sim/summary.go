package sim

import "sort"

// bucketCount is the number of equal-width histogram bins.
const bucketCount = 8

// Bucket is one histogram bin over [Min, Max).
type Bucket struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// CombatSummary is the scalar reduction of a fight list.
type CombatSummary struct {
	Iterations           int                `json:"iterations"`
	SurvivalRate         float64            `json:"survivalRate"`
	AvgFightDurationSec  float64            `json:"avgFightDurationSec"`
	MedianFightDuration  float64            `json:"medianFightDurationSec"`
	AvgDamageDealt       float64            `json:"avgDamageDealt"`
	AvgDamageTaken       float64            `json:"avgDamageTaken"`
	AvgHealthRemaining   float64            `json:"avgHealthRemaining"`
	AvgPlayerDPS         float64            `json:"avgPlayerDps"`
	AvgEnemyDPS          float64            `json:"avgEnemyDps"`
	AvgCritRate          float64            `json:"avgCritRate"`
	OneShotRate          float64            `json:"oneShotRate"`
	LongFightRate        float64            `json:"longFightRate"`
	FastWinRate          float64            `json:"fastWinRate"`
	AbilityUsage         map[string]float64 `json:"abilityUsage"`
	DamageDealtBuckets   []Bucket           `json:"damageDealtBuckets"`
	DamageTakenBuckets   []Bucket           `json:"damageTakenBuckets"`
	DurationBuckets      []Bucket           `json:"durationBuckets"`
}

// Thresholds used both here and by the alert detector.
const (
	longFightSec = 60.0
	fastWinSec   = 3.0
)

// Summarize reduces the fight list to aggregate statistics. loadout lists
// the player's ability ids so that never-used abilities still appear in the
// usage heatmap with a zero average.
func Summarize(fights []FightResult, loadout []string) CombatSummary {
	n := len(fights)
	summary := CombatSummary{
		Iterations:   n,
		AbilityUsage: make(map[string]float64, len(loadout)),
	}
	if n == 0 {
		return summary
	}

	var wins, oneShots, longFights, fastWins int
	var totalCrits, totalHits int
	var durations, dealt, taken []float64
	durations = make([]float64, 0, n)
	dealt = make([]float64, 0, n)
	taken = make([]float64, 0, n)

	usage := make(map[string]int, len(loadout))
	for _, id := range loadout {
		usage[id] = 0
	}

	var sumDuration, sumDealt, sumTaken, sumHealth, sumDPS, sumEnemyDPS float64
	for _, f := range fights {
		if f.Won {
			wins++
			if f.DurationSec < fastWinSec {
				fastWins++
			}
		}
		if f.OneShot {
			oneShots++
		}
		if f.DurationSec > longFightSec {
			longFights++
		}

		sumDuration += f.DurationSec
		sumDealt += f.DamageDealt
		sumTaken += f.DamageTaken
		sumHealth += f.PlayerHealthRemaining
		if f.DurationSec > 0 {
			sumDPS += f.DamageDealt / f.DurationSec
			sumEnemyDPS += f.DamageTaken / f.DurationSec
		}
		totalCrits += f.CritCount
		totalHits += f.HitCount

		for id, count := range f.AbilityUsage {
			usage[id] += count
		}

		durations = append(durations, f.DurationSec)
		dealt = append(dealt, f.DamageDealt)
		taken = append(taken, f.DamageTaken)
	}

	fn := float64(n)
	summary.SurvivalRate = float64(wins) / fn
	summary.OneShotRate = float64(oneShots) / fn
	summary.LongFightRate = float64(longFights) / fn
	summary.FastWinRate = float64(fastWins) / fn
	summary.AvgFightDurationSec = sumDuration / fn
	summary.MedianFightDuration = median(durations)
	summary.AvgDamageDealt = sumDealt / fn
	summary.AvgDamageTaken = sumTaken / fn
	summary.AvgHealthRemaining = sumHealth / fn
	summary.AvgPlayerDPS = sumDPS / fn
	summary.AvgEnemyDPS = sumEnemyDPS / fn
	if totalHits > 0 {
		summary.AvgCritRate = float64(totalCrits) / float64(totalHits)
	}

	for id, total := range usage {
		summary.AbilityUsage[id] = float64(total) / fn
	}

	summary.DamageDealtBuckets = buildBuckets(dealt)
	summary.DamageTakenBuckets = buildBuckets(taken)
	summary.DurationBuckets = buildBuckets(durations)
	return summary
}

// median returns the middle value; it sorts a copy, leaving the input alone.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// buildBuckets builds equal-width histogram bins. When every value is equal
// the histogram degenerates to one bin instead of dividing by zero.
func buildBuckets(values []float64) []Bucket {
	if len(values) == 0 {
		return nil
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		return []Bucket{{Min: min, Max: max, Count: len(values)}}
	}

	width := (max - min) / bucketCount
	buckets := make([]Bucket, bucketCount)
	for i := range buckets {
		buckets[i].Min = min + float64(i)*width
		buckets[i].Max = min + float64(i+1)*width
	}
	buckets[bucketCount-1].Max = max

	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= bucketCount {
			idx = bucketCount - 1
		}
		buckets[idx].Count++
	}
	return buckets
}
