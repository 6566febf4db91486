package config

import (
	"git.lost.host/meutraa/eotn/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	AssetDirectory = kingpin.Flag("assets", "Sound sample directory").Short('a').Default("assets").String()
	Database       = kingpin.Flag("database", "Result history database").Default("./results.db").String()
	Lives          = kingpin.Flag("lives", "Lives per game").Default("3").Int()
	ScoreIncrement = kingpin.Flag("score-increment", "Points per correct judgment").Default("10").Int()
	FramePeriod    = kingpin.Flag("frame-period", "Render frame period").Short('p').Default("16ms").Duration()
	SampleJitter   = kingpin.Flag("sample-jitter", "Simulated plane detection noise in metres").Default("0.02").Float64()
	TimeoutLead    = kingpin.Flag("timeout-lead", "How long before arrival a note expires").Default("100ms").Duration()

	NoteStartX       = kingpin.Flag("note-start", "Spawn offset in metres").Default("0.5").Float64()
	NoteEndX         = kingpin.Flag("note-end", "End of travel offset in metres").Default("-0.5").Float64()
	JudgmentX        = kingpin.Flag("judgment-line", "Judgment line offset in metres").Default("-0.5").Float64()
	CriticalDistance = kingpin.Flag("critical-distance", "Judgment window half-width in metres").Default("0.08").Float64()

	halfStepHeight = kingpin.Flag("half-step", "Staff half step height in metres").Default("0.02").Float64()

	easyInterval   = kingpin.Flag("easy-interval", "Spawn interval on easy").Default("5s").Duration()
	mediumInterval = kingpin.Flag("medium-interval", "Spawn interval on medium").Default("3s").Duration()
	hardInterval   = kingpin.Flag("hard-interval", "Spawn interval on hard").Default("2s").Duration()
	easyTravel     = kingpin.Flag("easy-travel", "Travel duration on easy").Default("5s").Duration()
	mediumTravel   = kingpin.Flag("medium-travel", "Travel duration on medium").Default("4s").Duration()
	hardTravel     = kingpin.Flag("hard-travel", "Travel duration on hard").Default("3s").Duration()
	mediumScore    = kingpin.Flag("medium-score", "Score required for medium").Default("50").Int()
	hardScore      = kingpin.Flag("hard-score", "Score required for hard").Default("100").Int()

	Staff        game.Staff
	Difficulties []game.Difficulty
)

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	Staff = game.Staff{
		HalfStepHeight: *halfStepHeight,
		BaseOffset:     -2 * *halfStepHeight,
	}
	Difficulties = []game.Difficulty{
		{Name: "easy", Score: 0, SpawnInterval: *easyInterval, TravelDuration: *easyTravel, Octaves: 1},
		{Name: "medium", Score: *mediumScore, SpawnInterval: *mediumInterval, TravelDuration: *mediumTravel, Octaves: 2},
		{Name: "hard", Score: *hardScore, SpawnInterval: *hardInterval, TravelDuration: *hardTravel, Octaves: 2, Accidentals: true},
	}
}
