package setup

import (
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/rooms"
)

// Item ids used by the default layout
const (
	ItemTuckedNote     world.ItemID = "tucked-note"
	ItemBrassKey       world.ItemID = "brass-key"
	ItemLens           world.ItemID = "lens"
	ItemTornPhotograph world.ItemID = "torn-photograph"
	ItemSmallGear      world.ItemID = "small-gear"
	ItemAudioStamp     world.ItemID = "audio-stamp"
	ItemRiddleKey      world.ItemID = "riddle-key"
	ItemTiledEmblem    world.ItemID = "tiled-emblem"
)

// Side puzzles of the vault
const (
	PuzzleChimes rooms.PuzzleID = "chimes"
	PuzzleRiddle rooms.PuzzleID = "riddle"
	PuzzleTiles  rooms.PuzzleID = "tiles"
)

// Room ids used by the default layout
const (
	RoomLobby rooms.RoomID = "lobby"
	RoomStudy rooms.RoomID = "study"
	RoomVault rooms.RoomID = "vault"
	RoomFinal rooms.RoomID = "final"
)

const letterPlaintext = "there is a next"

// DefaultLayout returns the four-room cinematic escape room
func DefaultLayout() Layout {
	return Layout{
		Start:     RoomLobby,
		TimeLimit: DefaultTimeLimit,
		Items: []world.Item{
			{ID: ItemTuckedNote, Name: "Tucked Note", Icon: "📝", Kind: world.KindNote, Note: `A scribbled note: "Remember 7"`},
			{ID: ItemBrassKey, Name: "Brass Key", Icon: "🔑"},
			{ID: ItemLens, Name: "Lens", Icon: "🔍"},
			{ID: ItemTornPhotograph, Name: "Torn Photograph", Icon: "🖼", Kind: world.KindNote, Note: "Two pieces survive. One shows a 1, the other a 4."},
			{ID: ItemSmallGear, Name: "Small Gear", Icon: "⚙"},
			{ID: ItemAudioStamp, Name: "Audio Stamp", Icon: "🔊"},
			{ID: ItemRiddleKey, Name: "Riddle Key", Icon: "🗝"},
			{ID: ItemTiledEmblem, Name: "Tiled Emblem", Icon: "🔷"},
		},
		Rooms: []rooms.Room{
			{
				ID:          RoomLobby,
				Name:        "Lobby",
				Background:  "foyer",
				Description: "A warm foyer. Search the cabinet and the framed portrait.",
				Hint:        "The keypad code starts with 3.",
				Gate:        entities.CodeGate{Label: "Antique Keypad", Code: "3142", Reward: ItemBrassKey},
				Next:        RoomStudy,
				Key:         ItemBrassKey,
				Items:       []world.ItemID{ItemTuckedNote},
			},
			{
				ID:          RoomStudy,
				Name:        "Study",
				Background:  "library",
				Description: "Books and a lamp. Toggling the light reveals hidden writing.",
				Hint:        "The faint letters hint at a shift cipher: every letter moved one place.",
				Gate: entities.CipherGate{
					Label:      "Encoded Letter",
					Ciphertext: entities.CaesarShift(letterPlaintext, 1),
					Answer:     letterPlaintext,
					Reward:     ItemLens,
				},
				Next: RoomVault,
			},
			{
				ID:          RoomVault,
				Name:        "Vault",
				Background:  "vault",
				Description: "A secure vault, a pattern lock and a torn photograph.",
				Hint:        "Trace the pattern down the left column, then along the bottom row.",
				Gate:        entities.CodeGate{Label: "Pattern Lock", Code: "14789", Reward: ItemSmallGear},
				Next:        RoomFinal,
				Items:       []world.ItemID{ItemTornPhotograph},
				Side: []rooms.SidePuzzle{
					{
						ID:     PuzzleChimes,
						Prompt: "A music box plays three bright rising notes. What did you hear?",
						Gate:   entities.ClueGate{Label: "Music Box", Keywords: []string{"bell", "chime"}, Reward: ItemAudioStamp},
					},
					{
						ID: PuzzleRiddle,
						Prompt: "Keys but no locks (piano or map)? Runs but never walks (water or clock)? " +
							"Opens with the number seen earlier (vault or door)? Answer all three in order.",
						Gate: entities.CodeGate{Label: "Riddle Path", Code: "piano water vault", Reward: ItemRiddleKey},
					},
					{
						ID:     PuzzleTiles,
						Prompt: "Nine floor tiles in a 3x3 grid. Enter them row by row, 1 raised and 0 flat.",
						Gate:   entities.CodeGate{Label: "Tile Pattern", Code: "110110011", Reward: ItemTiledEmblem},
					},
				},
			},
			{
				ID:          RoomFinal,
				Name:        "Final",
				Background:  "treasure",
				Description: "The final chest. Enter the three-digit code you discovered.",
				Hint:        "Combine the numbers from the note and the photograph.",
				Gate:        entities.FinalGate{Label: "Final Chest", Code: "714"},
			},
		},
	}
}
