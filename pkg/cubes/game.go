package cubes

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrMalformedGame = errors.New("malformed game")
	ErrNoSets        = errors.New("game has no set")
)

const gameKeyword = "Game"

var gameIDRe = regexp.MustCompile(`\d+`)

// Game is a game identifier with the sets revealed during the game, in order.
type Game struct {
	ID   uint64
	Sets []Set
}

// ParseGame parses "Game <id>: <set>; <set>; ..." where each set is a ", " separated list of draws.
// An empty set is kept as a set without draws.
func ParseGame(line string) (Game, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, errors.Wrapf(ErrMalformedGame, "missing ':' in %q", line)
	}

	header = strings.TrimSpace(header)
	if !strings.HasPrefix(header, gameKeyword) {
		return Game{}, errors.Wrapf(ErrMalformedGame, "header %q does not start with %q", header, gameKeyword)
	}
	rawID := gameIDRe.FindString(header[len(gameKeyword):])
	if rawID == "" {
		return Game{}, errors.Wrapf(ErrMalformedGame, "no identifier in %q", header)
	}
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return Game{}, errors.Wrapf(ErrMalformedGame, "identifier %q: %v", rawID, err)
	}

	rawSets := strings.Split(body, ";")
	game := Game{ID: id, Sets: make([]Set, 0, len(rawSets))}
	for _, rawSet := range rawSets {
		set := Set{}
		if strings.TrimSpace(rawSet) != "" {
			for _, rawDraw := range strings.Split(rawSet, ", ") {
				draw, err := ParseDraw(rawDraw)
				if err != nil {
					return Game{}, errors.Wrapf(err, "game %d", id)
				}
				set = append(set, draw)
			}
		}
		game.Sets = append(game.Sets, set)
	}

	return game, nil
}

// Feasible reports whether no draw of the game asks for more cubes of its color than limits holds.
func (g Game) Feasible(limits Supply) bool {
	for _, set := range g.Sets {
		for _, d := range set {
			if d.Amount > limits.Get(d.Color) {
				return false
			}
		}
	}

	return true
}

// MinPossibleSet returns the smallest supply able to produce every set of the game:
// for each color, the largest amount revealed in a single set.
func (g Game) MinPossibleSet() (Supply, error) {
	if len(g.Sets) == 0 {
		return Supply{}, errors.Wrapf(ErrNoSets, "game %d", g.ID)
	}

	var minSet Supply
	for _, set := range g.Sets {
		totals, err := set.Totals()
		if err != nil {
			return Supply{}, errors.Wrapf(err, "game %d", g.ID)
		}
		for _, c := range []Color{Red, Green, Blue} {
			minSet = minSet.With(c, max(minSet.Get(c), totals.Get(c)))
		}
	}

	return minSet, nil
}

// Power returns the power of the minimal supply of the game.
func (g Game) Power() (uint64, error) {
	minSet, err := g.MinPossibleSet()
	if err != nil {
		return 0, err
	}

	power, err := minSet.Power()
	if err != nil {
		return 0, errors.Wrapf(err, "game %d", g.ID)
	}

	return power, nil
}
