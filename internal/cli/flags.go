package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// rangeFlags is the shared --granularity/--from/--to flag set used by every
// command that renders a date range.
type rangeFlags struct {
	granularity string
	from        string
	to          string
}

func (rf *rangeFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&rf.granularity, "granularity", "g", "", "bucket size: day, week or month")
	fs.StringVar(&rf.from, "from", "", "range start (YYYY-MM-DD)")
	fs.StringVar(&rf.to, "to", "", "range end (YYYY-MM-DD)")
}

// resolve parses the raw flag values. An empty granularity passes through so
// the service default applies; either date may be set on its own.
func (rf *rangeFlags) resolve() (domain.Granularity, *time.Time, *time.Time, error) {
	var gran domain.Granularity
	if rf.granularity != "" {
		g, err := domain.ParseGranularity(rf.granularity)
		if err != nil {
			return "", nil, nil, err
		}
		gran = g
	}

	from, err := parseDateFlag("from", rf.from)
	if err != nil {
		return "", nil, nil, err
	}
	to, err := parseDateFlag("to", rf.to)
	if err != nil {
		return "", nil, nil, err
	}

	return gran, from, to, nil
}

// dateFlagLayouts accepts ISO dates plus the day-first form this team's
// spreadsheet exports use.
var dateFlagLayouts = []string{"2006-01-02", "02/01/2006"}

func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateFlagLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("invalid --%s date %q (expected YYYY-MM-DD or DD/MM/YYYY)", name, value)
}
