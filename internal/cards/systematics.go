package cards

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/mgcards/internal/config"
)

// RunsSystematics reports whether any systematic needs the generator's
// systematics program, i.e. a PDF or scale variation.
func RunsSystematics(systematics []*config.Systematic) bool {
	for _, s := range systematics {
		if s.Type == config.SystematicPDF || s.Type == config.SystematicScale {
			return true
		}
	}
	return false
}

// SystematicsArguments assembles the systematics_arguments value for a run
// card. Each scale axis and the PDF may be varied by at most one systematic.
// It returns an empty string when no argument is needed.
func SystematicsArguments(systematics []*config.Systematic) (string, error) {
	var args []string
	murDone, mufDone, pdfDone := false, false, false

	quote := func(s string) string { return "'" + s + "'" }

	for _, s := range systematics {
		switch {
		case s.Type == config.SystematicScale && s.Scale == config.ScaleMu:
			if murDone || mufDone {
				return "", fmt.Errorf("%w: scale variation (%s)", ErrDuplicateSystematic, s.Name)
			}
			args = append(args,
				quote("--mur="+s.Value),
				quote("--muf="+s.Value),
				quote("--together=mur,muf"),
				quote("--dyn=-1"),
			)
			murDone, mufDone = true, true

		case s.Type == config.SystematicScale && s.Scale == config.ScaleMuR:
			if murDone {
				return "", fmt.Errorf("%w: mur variation (%s)", ErrDuplicateSystematic, s.Name)
			}
			args = append(args, quote("--mur="+s.Value), quote("--dyn=-1"))
			murDone = true

		case s.Type == config.SystematicScale && s.Scale == config.ScaleMuF:
			if mufDone {
				return "", fmt.Errorf("%w: muf variation (%s)", ErrDuplicateSystematic, s.Name)
			}
			args = append(args, quote("--muf="+s.Value), quote("--dyn=-1"))
			mufDone = true

		case s.Type == config.SystematicPDF:
			if pdfDone {
				return "", fmt.Errorf("%w: PDF variation (%s)", ErrDuplicateSystematic, s.Name)
			}
			args = append(args, quote("--pdf="+s.Value))
			pdfDone = true
		}
	}

	if len(args) == 0 {
		return "", nil
	}
	return "[" + strings.Join(args, ", ") + "]", nil
}
