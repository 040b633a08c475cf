// Command solve runs a CFR solver on a named game and logs the NashConv
// of the average policy as it converges.
//
// Example:
//
//	solve -game kuhn_poker -players 2 -iter 1000 -cfrplus -logtostderr
package main

import (
	"flag"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	spiel "github.com/wengminhua/open-spiel"
	"github.com/wengminhua/open-spiel/cfr"
	"github.com/wengminhua/open-spiel/eval"
	"github.com/wengminhua/open-spiel/kuhn"
	"github.com/wengminhua/open-spiel/matrix"
	"github.com/wengminhua/open-spiel/turnbased"
)

func main() {
	gameName := flag.String("game", "kuhn_poker", "Game to solve: kuhn_poker, matrix_rps, matrix_shapleys_game, matching_pennies_3p")
	players := flag.Int("players", 2, "Number of players (kuhn_poker only)")
	iterations := flag.Int("iter", 1000, "Number of CFR iterations")
	plus := flag.Bool("cfrplus", false, "Use CFR+ instead of vanilla CFR")
	reportEvery := flag.Int("report_every", 100, "Iterations between NashConv reports")
	flag.Parse()

	game, err := loadGame(*gameName, *players)
	if err != nil {
		glog.Exit(err)
	}

	params := cfr.Params{}
	if *plus {
		params = cfr.CFRPlusParams()
	}

	solver, err := cfr.New(game, params)
	if err != nil {
		glog.Exit(err)
	}

	glog.Infof("Solving %s with %+v", game.Name(), params)
	start := time.Now()
	for i := 1; i <= *iterations; i++ {
		solver.EvaluateAndUpdatePolicy()
		if i%*reportEvery == 0 || i == *iterations {
			nashConv := eval.NashConv(game, solver.AveragePolicy())
			ips := float64(i) / time.Since(start).Seconds()
			glog.Infof("[iter=%d] %d infosets, NashConv=%.6g (%.1f iter/sec)",
				i, solver.NumInfoStates(), nashConv, ips)
		}
	}

	policy := solver.AveragePolicy()
	glog.Infof("Expected returns under the average policy: %v",
		eval.ExpectedReturns(game.NewInitialState(), policy))
}

func loadGame(name string, players int) (spiel.Game, error) {
	switch name {
	case "kuhn_poker":
		return kuhn.NewGame(players)
	case "matrix_rps":
		return turnbased.New(matrix.RockPaperScissors())
	case "matrix_shapleys_game":
		return turnbased.New(matrix.ShapleysGame())
	case "matching_pennies_3p":
		return turnbased.New(matrix.MatchingPennies3P())
	default:
		return nil, errors.Errorf("unknown game %q", name)
	}
}
