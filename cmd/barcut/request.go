package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/piwi3910/BarCut/internal/importer"
	"github.com/piwi3910/BarCut/internal/model"
	"github.com/piwi3910/BarCut/internal/project"
	"github.com/spf13/cobra"
)

// requestFlags are the input flags shared by pack, compare and estimate.
type requestFlags struct {
	jobPath       string
	partsPath     string
	pieces        []string
	leftovers     []float64
	leftoversPath string
	useInventory  bool
	profile       string

	stdLength float64
	trim      float64
	kerf      float64
	maxTime   time.Duration
	tuning    int
}

func (f *requestFlags) register(cmd *cobra.Command) {
	defaults := model.DefaultOptions()
	flags := cmd.Flags()
	flags.StringVarP(&f.jobPath, "job", "j", "", "Job file (.yaml, .yml or .json)")
	flags.StringVarP(&f.partsPath, "parts", "p", "", "Cut list file (.csv or .xlsx)")
	flags.StringArrayVar(&f.pieces, "piece", nil, "Piece as [label:]length[xqty], repeatable")
	flags.Float64SliceVar(&f.leftovers, "leftover", nil, "Leftover bar length, repeatable")
	flags.StringVar(&f.leftoversPath, "leftovers-file", "", "Leftover list file (.csv or .xlsx)")
	flags.BoolVar(&f.useInventory, "inventory", false, "Use the saved leftover inventory")
	flags.StringVar(&f.profile, "profile", "", "Stock profile ID or name")
	flags.Float64Var(&f.stdLength, "std-length", defaults.StdLength, "Standard bar length in mm (0 = leftovers only)")
	flags.Float64Var(&f.trim, "trim", defaults.TrimSize, "Trim removed from each bar end in mm")
	flags.Float64Var(&f.kerf, "kerf", defaults.SawKerf, "Saw kerf in mm")
	flags.DurationVar(&f.maxTime, "max-time", defaults.MaxTime, "Computation budget (max 10s)")
	flags.IntVar(&f.tuning, "tuning", defaults.TuningLevel, "Tuning level: 0 fast, 1 normal, 2 thorough")
}

// request is everything a command needs to run the engine.
type request struct {
	Name      string
	Config    model.AppConfig
	Options   model.Options
	Parts     []model.Part
	Inventory model.Inventory
	Warnings  []string
}

func (r request) Items() []model.Item {
	return model.ExpandParts(r.Parts)
}

func loadConfig() (model.AppConfig, string, error) {
	path := configPath
	if path == "" {
		path = project.DefaultConfigPath()
	}
	cfg, err := project.LoadAppConfig(path)
	if err != nil {
		return model.AppConfig{}, path, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, path, nil
}

// build merges the option sources in increasing priority: app config,
// stock profile, job file, explicit flags.
func (f *requestFlags) build(cmd *cobra.Command) (request, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return request{}, err
	}
	req := request{Config: cfg, Options: model.DefaultOptions()}
	cfg.ApplyToOptions(&req.Options)

	var job project.Job
	if f.jobPath != "" {
		job, err = project.LoadJob(f.jobPath)
		if err != nil {
			return request{}, fmt.Errorf("%s: %w", f.jobPath, err)
		}
		req.Name = job.Name
		if req.Name == "" {
			req.Name = f.jobPath
		}
	}

	profileKey := f.profile
	if profileKey == "" {
		profileKey = job.Profile
	}
	if profileKey != "" {
		profiles, err := project.AllProfiles(project.DefaultProfilesPath())
		if err != nil {
			return request{}, err
		}
		p, ok := model.FindStockProfile(profiles, profileKey)
		if !ok {
			return request{}, fmt.Errorf("unknown stock profile %q", profileKey)
		}
		p.ApplyToOptions(&req.Options)
	}
	job.Options.Apply(&req.Options)

	flags := cmd.Flags()
	if flags.Changed("std-length") {
		req.Options.StdLength = f.stdLength
	}
	if flags.Changed("trim") {
		req.Options.TrimSize = f.trim
	}
	if flags.Changed("kerf") {
		req.Options.SawKerf = f.kerf
	}
	if flags.Changed("max-time") {
		req.Options.MaxTime = f.maxTime
	}
	if flags.Changed("tuning") {
		req.Options.TuningLevel = f.tuning
	}

	req.Parts = append(req.Parts, job.Parts...)
	if f.partsPath != "" {
		res := importer.ImportFile(f.partsPath)
		if len(res.Errors) > 0 {
			return request{}, fmt.Errorf("%s: %s", f.partsPath, strings.Join(res.Errors, "; "))
		}
		req.Warnings = append(req.Warnings, res.Warnings...)
		req.Parts = append(req.Parts, res.Parts...)
		if req.Name == "" {
			req.Name = f.partsPath
		}
	}
	for _, spec := range f.pieces {
		p, err := parsePiece(spec)
		if err != nil {
			return request{}, err
		}
		req.Parts = append(req.Parts, p)
	}
	if len(req.Parts) == 0 {
		return request{}, fmt.Errorf("no parts given: use --job, --parts or --piece")
	}

	leftovers := append([]float64{}, job.Leftovers...)
	leftovers = append(leftovers, f.leftovers...)
	if f.leftoversPath != "" {
		res := importer.ImportFile(f.leftoversPath)
		if len(res.Errors) > 0 {
			return request{}, fmt.Errorf("%s: %s", f.leftoversPath, strings.Join(res.Errors, "; "))
		}
		leftovers = append(leftovers, res.Lengths()...)
	}
	if f.useInventory {
		inv, err := project.LoadInventory(project.InventoryPath(cfg))
		if err != nil {
			return request{}, err
		}
		leftovers = append(leftovers, inv.Leftovers...)
	}
	req.Inventory = model.NewInventory(leftovers...)
	return req, nil
}

// parsePiece reads "[label:]length[xqty]", for example "Post:2400x4" or "600".
func parsePiece(spec string) (model.Part, error) {
	s := strings.TrimSpace(spec)
	label := ""
	if i := strings.LastIndex(s, ":"); i >= 0 {
		label = strings.TrimSpace(s[:i])
		s = s[i+1:]
	}

	qty := 1
	if i := strings.IndexAny(s, "xX*"); i >= 0 {
		n, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
		if err != nil || n <= 0 {
			return model.Part{}, fmt.Errorf("invalid quantity in piece %q", spec)
		}
		qty = n
		s = s[:i]
	}

	length, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || length <= 0 {
		return model.Part{}, fmt.Errorf("invalid length in piece %q", spec)
	}
	if label == "" {
		label = strconv.FormatFloat(length, 'f', -1, 64)
	}
	return model.NewPart(label, length, qty), nil
}
