package setup

import (
	"sort"

	"github.com/pkg/errors"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/rooms"
)

// PracticeLayout is a short 15 minute run with easy answers, used to learn
// the commands.
func PracticeLayout() Layout {
	return Layout{
		Start:     RoomLobby,
		TimeLimit: 15 * 60,
		Items: []world.Item{
			{ID: "sun-sketch", Name: "Sun Sketch", Icon: "☀", Kind: world.KindNote, Note: "A child's drawing of the sun. The back reads: fnu."},
		},
		Rooms: []rooms.Room{
			{ID: RoomLobby, Name: "Lobby", Description: "An empty hall with a door to the study.", Next: RoomStudy},
			{
				ID:          RoomStudy,
				Name:        "Study",
				Description: "A keypad glows next to the vault door.",
				Hint:        "One, two, three.",
				Gate:        entities.CodeGate{Label: "Keypad", Code: "123"},
				Next:        RoomVault,
			},
			{
				ID:          RoomVault,
				Name:        "Vault",
				Description: "A letter is pinned to the wall.",
				Hint:        "Shift each letter back by one.",
				Gate:        entities.CipherGate{Label: "Letter", Ciphertext: entities.CaesarShift("sun", 1), Answer: "sun"},
				Next:        RoomFinal,
				Items:       []world.ItemID{"sun-sketch"},
			},
			{
				ID:          RoomFinal,
				Name:        "Final",
				Description: "A heavy door with a word lock.",
				Hint:        "What every prisoner wants.",
				Gate:        entities.FinalGate{Label: "Word Lock", Code: "freedom"},
			},
		},
	}
}

var layouts = map[string]func() Layout{
	"classic":  DefaultLayout,
	"practice": PracticeLayout,
}

// Lookup returns the named layout
func Lookup(name string) (Layout, error) {
	build, ok := layouts[name]
	if !ok {
		return Layout{}, errors.Errorf("unknown layout %q (have %v)", name, Names())
	}
	return build(), nil
}

// Names lists the available layouts
func Names() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
