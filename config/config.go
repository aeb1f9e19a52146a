package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"gridsnake/game/types"

	"github.com/joho/godotenv"
)

// Settings are the process level knobs. Environment values only provide
// defaults; command line flags override them.
type Settings struct {
	Frontend  string
	ArenaSize float64
	Cells     int
	MoveDelay int
	BurstSize int
	Seed      uint64
	FPS       int

	Store     string
	StorePath string

	Autopilot string
	ModelPath string
	Train     int

	SpectateAddr string
	LogFile      string
}

func Defaults() Settings {
	return Settings{
		Frontend:  "window",
		ArenaSize: types.DefaultArenaSize,
		Cells:     types.DefaultCells,
		MoveDelay: types.MoveDelay,
		BurstSize: types.BurstSize,
		FPS:       60,
		Store:     "file",
		StorePath: "data/stats.json",
		Autopilot: "off",
		ModelPath: "data/model",
	}
}

// InitConfig loads .env style files into the environment. Missing files are
// skipped; a file that exists but cannot be parsed is an error.
func InitConfig(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
		log.Printf("config: loaded environment from %s", f)
	}
	return nil
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}

// FromEnv starts from Defaults and applies every SNAKE_* variable that is set
func FromEnv() (Settings, error) {
	s := Defaults()
	var errs []error

	str := func(key string, dst *string) {
		if v, err := GetEnvVariable(key); err == nil {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		v, err := GetEnvVariable(key)
		if err != nil {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = n
	}

	str("SNAKE_FRONTEND", &s.Frontend)
	num("SNAKE_CELLS", &s.Cells)
	num("SNAKE_DELAY", &s.MoveDelay)
	num("SNAKE_BURST", &s.BurstSize)
	num("SNAKE_FPS", &s.FPS)
	num("SNAKE_TRAIN", &s.Train)
	str("SNAKE_STORE", &s.Store)
	str("SNAKE_DB", &s.StorePath)
	str("SNAKE_AUTOPILOT", &s.Autopilot)
	str("SNAKE_MODEL", &s.ModelPath)
	str("SNAKE_SPECTATE", &s.SpectateAddr)
	str("SNAKE_LOG", &s.LogFile)

	if v, err := GetEnvVariable("SNAKE_SIZE"); err == nil {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("SNAKE_SIZE: %w", err))
		} else {
			s.ArenaSize = f
		}
	}
	if v, err := GetEnvVariable("SNAKE_SEED"); err == nil {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("SNAKE_SEED: %w", err))
		} else {
			s.Seed = n
		}
	}

	return s, errors.Join(errs...)
}

// GameConfig turns the settings into a validated session config
func (s Settings) GameConfig() (types.Config, error) {
	cfg := types.DefaultConfig()
	cfg.ArenaWidth = s.ArenaSize
	cfg.ArenaHeight = s.ArenaSize
	cfg.Cells = s.Cells
	cfg.MoveDelay = s.MoveDelay
	cfg.BurstSize = s.BurstSize
	cfg.Seed = s.Seed
	return cfg, cfg.Validate()
}
