package cli

import (
	"flag"

	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/ganot/builderp/internal/domain/project"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command tree for shell completion. Global flags
// come from root and each subcommand contributes the flags it declares.
func Completion(root *flag.FlagSet, env *Env) *complete.Command {
	cmd := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(root, nil),
	}
	for _, r := range commands(env) {
		fs := flag.NewFlagSet(r.cmd.Name(), flag.ContinueOnError)
		r.cmd.SetFlags(fs)
		cmd.Sub[r.cmd.Name()] = &complete.Command{Flags: flagPredictors(fs, statusValues(r.cmd.Name()))}
	}
	for _, name := range []string{"help", "flags", "commands"} {
		cmd.Sub[name] = &complete.Command{}
	}
	return cmd
}

func flagPredictors(fs *flag.FlagSet, status predict.Set) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case f.Name == "status" && status != nil:
			flags[f.Name] = status
		case f.Name == "db":
			flags[f.Name] = predict.Files("*.db")
		case isBool(f):
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func statusValues(command string) predict.Set {
	switch command {
	case "add-project":
		return predict.Set{string(project.StatusActive), string(project.StatusCompleted), string(project.StatusOnHold)}
	case "record-invoice":
		return predict.Set{string(invoice.StatusPaid), string(invoice.StatusPending), string(invoice.StatusOverdue)}
	}
	return nil
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
