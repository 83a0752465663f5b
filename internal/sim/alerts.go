package sim

import (
	"fmt"
	"sort"
)

// Severity ranks a balance alert.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// rank orders severities for sorting; higher is more severe.
func (s Severity) rank() int {
	switch s {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// BalanceAlert flags a statistically suspicious aggregate outcome.
type BalanceAlert struct {
	Severity  Severity `json:"severity"`
	Type      string   `json:"type"`
	Message   string   `json:"message"`
	Metric    string   `json:"metric"`
	Value     float64  `json:"value"`
	Threshold float64  `json:"threshold"`
}

// Detector thresholds. Fixed constants: tuning the rules themselves is a
// designer conversation, not a config knob.
const (
	oneShotWarnRate      = 0.05
	oneShotCritRate      = 0.20
	longFightWarnRate    = 0.10
	longFightCritRate    = 0.30
	fastWinInfoRate      = 0.50
	deadAbilityUsage     = 0.1
	dpsAsymmetryFraction = 0.5
	survivalWarnRate     = 0.30
	survivalCritRate     = 0.10
	trivialSurvivalRate  = 0.98
	trivialAvgDuration   = 10.0
)

// DetectAlerts applies the fixed heuristic rules to a summary. The returned
// alerts are sorted by severity, critical first; insertion order is kept
// within the same severity.
func DetectAlerts(summary CombatSummary) []BalanceAlert {
	var alerts []BalanceAlert

	if summary.OneShotRate > oneShotWarnRate {
		severity := SeverityWarning
		threshold := oneShotWarnRate
		if summary.OneShotRate > oneShotCritRate {
			severity = SeverityCritical
			threshold = oneShotCritRate
		}
		alerts = append(alerts, BalanceAlert{
			Severity: severity, Type: "one-shot-high",
			Message: fmt.Sprintf("%.1f%% of fights ended in a one-shot kill; inspect burst damage outliers", summary.OneShotRate*100),
			Metric:  "oneShotRate", Value: summary.OneShotRate, Threshold: threshold,
		})
	}

	if summary.LongFightRate > longFightWarnRate {
		severity := SeverityWarning
		threshold := longFightWarnRate
		if summary.LongFightRate > longFightCritRate {
			severity = SeverityCritical
			threshold = longFightCritRate
		}
		alerts = append(alerts, BalanceAlert{
			Severity: severity, Type: "fight-length-high",
			Message: fmt.Sprintf("%.1f%% of fights lasted over %.0fs; combat feels spongy", summary.LongFightRate*100, longFightSec),
			Metric:  "longFightRate", Value: summary.LongFightRate, Threshold: threshold,
		})
	}

	if summary.FastWinRate > fastWinInfoRate {
		alerts = append(alerts, BalanceAlert{
			Severity: SeverityInfo, Type: "fast-wins",
			Message: fmt.Sprintf("%.1f%% of fights won in under %.0fs; player is likely overpowered", summary.FastWinRate*100, fastWinSec),
			Metric:  "fastWinRate", Value: summary.FastWinRate, Threshold: fastWinInfoRate,
		})
	}

	// Dead abilities, in a stable order.
	ids := make([]string, 0, len(summary.AbilityUsage))
	for id := range summary.AbilityUsage {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if avg := summary.AbilityUsage[id]; avg < deadAbilityUsage {
			alerts = append(alerts, BalanceAlert{
				Severity: SeverityWarning, Type: "ability-unused",
				Message: fmt.Sprintf("ability %q averages %.2f uses per fight; it is effectively dead", id, avg),
				Metric:  "avgUsesPerFight", Value: avg, Threshold: deadAbilityUsage,
			})
		}
	}

	if summary.AvgEnemyDPS > 0 && summary.AvgPlayerDPS < dpsAsymmetryFraction*summary.AvgEnemyDPS {
		alerts = append(alerts, BalanceAlert{
			Severity: SeverityWarning, Type: "dps-asymmetry",
			Message: fmt.Sprintf("player DPS %.1f is under half of enemy DPS %.1f; player cannot out-damage", summary.AvgPlayerDPS, summary.AvgEnemyDPS),
			Metric:  "avgPlayerDps", Value: summary.AvgPlayerDPS, Threshold: dpsAsymmetryFraction * summary.AvgEnemyDPS,
		})
	}

	if summary.SurvivalRate < survivalWarnRate {
		severity := SeverityWarning
		threshold := survivalWarnRate
		if summary.SurvivalRate < survivalCritRate {
			severity = SeverityCritical
			threshold = survivalCritRate
		}
		alerts = append(alerts, BalanceAlert{
			Severity: severity, Type: "survival-low",
			Message: fmt.Sprintf("survival rate is %.1f%%; the encounter is likely unwinnable as tuned", summary.SurvivalRate*100),
			Metric:  "survivalRate", Value: summary.SurvivalRate, Threshold: threshold,
		})
	}

	if summary.SurvivalRate > trivialSurvivalRate && summary.AvgFightDurationSec < trivialAvgDuration {
		alerts = append(alerts, BalanceAlert{
			Severity: SeverityInfo, Type: "encounter-trivial",
			Message: fmt.Sprintf("survival %.1f%% with %.1fs average fights; the encounter poses no threat", summary.SurvivalRate*100, summary.AvgFightDurationSec),
			Metric:  "survivalRate", Value: summary.SurvivalRate, Threshold: trivialSurvivalRate,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.rank() > alerts[j].Severity.rank()
	})
	return alerts
}
