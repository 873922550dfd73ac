// Package intent classifies a user message into at most one screen intent.
package intent

import (
	"regexp"
	"strings"
	"time"

	"github.com/bnema/vehicle-assistant-cli/internal/calendar"
	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

type ruleFunc func(text string, now time.Time) (domain.Intent, bool)

// topic groups the rules tried once its trigger matches; a nil trigger always
// matches. The first rule that hits wins. When every rule misses, detection
// moves on to the next topic.
type topic struct {
	name    string
	trigger *regexp.Regexp
	rules   []ruleFunc
}

var (
	reHistory    = regexp.MustCompile(`(últim[oa]s?\s*\d*\s*registros?)|(lo\s+último\s+que\s+registr[ée]?)`)
	reLast       = regexp.MustCompile(`últim|ultimo|último`)
	reMaintain   = regexp.MustCompile(`manten|servici`)
	reNext       = regexp.MustCompile(`próxim|proxim|siguient|vence|por vencer`)
	reOverdue    = regexp.MustCompile(`vencid|atrasad`)
	reSoat       = regexp.MustCompile(`soat`)
	reTecnico    = regexp.MustCompile(`t[eé]cnic|tecnomec`)
	rePicoPlaca  = regexp.MustCompile(`pico\s*y\s*placa|picoyplaca`)
	reDocuments  = regexp.MustCompile(`document|estado de mis documento`)
	reToday      = regexp.MustCompile(`\bhoy\b`)
	reTomorrow   = regexp.MustCompile(`\bmañana\b`)
	reDayAfter   = regexp.MustCompile(`\bpasado\s+mañana\b`)
	reThisWeek   = regexp.MustCompile(`esta\s+semana`)
	reThisMonth  = regexp.MustCompile(`este\s+mes`)
	reNextMonth  = regexp.MustCompile(`pr(ó|o)ximo\s+mes`)
	reDailyWord  = regexp.MustCompile(`daily`)
	reAgendaLike = regexp.MustCompile(`(agenda|calendari|daily)`)
)

var topics = []topic{
	{
		name:    "preventive",
		trigger: regexp.MustCompile(`preventiv`),
		rules: []ruleFunc{
			history(domain.ScreenPreventive),
			func(t string, _ time.Time) (domain.Intent, bool) {
				return fixed(domain.ScreenPreventive, domain.IntentLastDone), reLast.MatchString(t) && reMaintain.MatchString(t)
			},
			matches(reNext, domain.ScreenPreventive, domain.IntentNextDue),
			matches(reOverdue, domain.ScreenPreventive, domain.IntentOverdue),
			byDate(func(string) domain.Screen { return domain.ScreenPreventive }),
			always(func(string) domain.Screen { return domain.ScreenPreventive }),
		},
	},
	{name: "general", trigger: regexp.MustCompile(`general`), rules: []ruleFunc{history(domain.ScreenGeneral)}},
	{name: "emergency", trigger: regexp.MustCompile(`emergenc`), rules: []ruleFunc{history(domain.ScreenEmergency)}},
	{name: "route", trigger: regexp.MustCompile(`\brutas?\b`), rules: []ruleFunc{history(domain.ScreenRoute)}},
	{
		name: "profile",
		rules: []ruleFunc{
			matches(reSoat, domain.ScreenProfile, domain.IntentSoatDue),
			matches(reTecnico, domain.ScreenProfile, domain.IntentTecDue),
			matches(rePicoPlaca, domain.ScreenProfile, domain.IntentPicoPlaca),
			matches(reDocuments, domain.ScreenProfile, domain.IntentDocsStatus),
		},
	},
	{
		name:    "agenda",
		trigger: reAgendaLike,
		rules: []ruleFunc{
			inRange(reToday, calendar.RangeToday, "hoy"),
			unless(reDayAfter, inRange(reTomorrow, calendar.RangeTomorrow, "mañana")),
			inRange(reThisWeek, calendar.RangeThisWeek, "esta semana"),
			inRange(reThisMonth, calendar.RangeThisMonth, "este mes"),
			inRange(reNextMonth, calendar.RangeNextMonth, "próximo mes"),
			byDate(agendaScreen),
			always(agendaScreen),
		},
	},
}

// Detect lowercases and trims text and returns the first intent found, or false.
func Detect(text string, now time.Time) (domain.Intent, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return domain.Intent{}, false
	}

	for _, tp := range topics {
		if tp.trigger != nil && !tp.trigger.MatchString(t) {
			continue
		}
		for _, rule := range tp.rules {
			if in, ok := rule(t, now); ok {
				return in, true
			}
		}
	}

	return domain.Intent{}, false
}

func agendaScreen(t string) domain.Screen {
	if reDailyWord.MatchString(t) {
		return domain.ScreenDaily
	}

	return domain.ScreenAgenda
}

func fixed(screen domain.Screen, kind domain.IntentKind) domain.Intent {
	return domain.Intent{Screen: screen, Kind: kind}
}

func history(screen domain.Screen) ruleFunc {
	return matches(reHistory, screen, domain.IntentHistoryLast5)
}

func matches(re *regexp.Regexp, screen domain.Screen, kind domain.IntentKind) ruleFunc {
	return func(t string, _ time.Time) (domain.Intent, bool) {
		return fixed(screen, kind), re.MatchString(t)
	}
}

// unless skips rule when veto matches.
func unless(veto *regexp.Regexp, rule ruleFunc) ruleFunc {
	return func(t string, now time.Time) (domain.Intent, bool) {
		if veto.MatchString(t) {
			return domain.Intent{}, false
		}

		return rule(t, now)
	}
}

func byDate(screen func(string) domain.Screen) ruleFunc {
	return func(t string, now time.Time) (domain.Intent, bool) {
		d, ok := calendar.ParseDateFromText(t, now)
		if !ok {
			return domain.Intent{}, false
		}

		return domain.Intent{Screen: screen(t), Kind: domain.IntentListByDate, Date: d}, true
	}
}

func always(screen func(string) domain.Screen) ruleFunc {
	return func(t string, _ time.Time) (domain.Intent, bool) {
		return fixed(screen(t), domain.IntentSummary), true
	}
}

func inRange(re *regexp.Regexp, label calendar.RangeLabel, display string) ruleFunc {
	return func(t string, now time.Time) (domain.Intent, bool) {
		if !re.MatchString(t) {
			return domain.Intent{}, false
		}
		r, err := calendar.DateRange(label, now)
		if err != nil {
			return domain.Intent{}, false
		}

		return domain.Intent{
			Screen: agendaScreen(t),
			Kind:   domain.IntentListRange,
			Start:  r.Start,
			End:    r.End,
			Label:  display,
		}, true
	}
}
