// Package config parses the options and the YAML job file of vgeos run.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/omniscale/vgeos/proj"
	"github.com/omniscale/vgeos/vector"
)

const (
	defaultSrid       = proj.WGS84
	defaultCacheDir   = "/tmp/vgeos"
	defaultResolution = 16
	defaultMitreLimit = 5.0
)

const (
	OpBuffer = "buffer"
	OpFilter = "filter"
)

// Step is one operation of a job. Op is a unary operation name, buffer or
// filter. A filter keeps the elements e where Predicate(WKT, e) is true.
// Resolution and MitreLimit are decoded by UnmarshalYAML.
type Step struct {
	Op string `yaml:"op"`

	Distance   float64 `yaml:"distance"`
	Resolution int     `yaml:"-"`
	CapStyle   string  `yaml:"cap_style"`
	JoinStyle  string  `yaml:"join_style"`
	MitreLimit float64 `yaml:"-"`

	Predicate string `yaml:"predicate"`
	WKT       string `yaml:"wkt"`
	Prepared  bool   `yaml:"prepared"`
}

type Job struct {
	Input  string `yaml:"input"`
	Steps  []Step `yaml:"steps"`
	Output string `yaml:"output"`
	Cache  string `yaml:"cache"`
	Table  string `yaml:"table"`
}

type Options struct {
	Job
	ConfigFile  string
	CacheDir    string
	Connection  string
	Srid        int
	Httpprofile string
	Quiet       bool
	Debug       bool
}

// LoadJob reads a job file. Unknown keys are errors.
func LoadJob(r io.Reader) (*Job, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	job := &Job{}
	if err := yaml.UnmarshalStrict(data, job); err != nil {
		return nil, errors.Wrap(err, "parsing job")
	}
	return job, nil
}

func (o *Options) updateFromConfig() error {
	if o.ConfigFile == "" {
		return nil
	}
	f, err := os.Open(o.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()
	job, err := LoadJob(f)
	if err != nil {
		return errors.Wrap(err, o.ConfigFile)
	}

	if o.Input == "" {
		o.Input = job.Input
	}
	if o.Output == "" {
		o.Output = job.Output
	}
	if o.Cache == "" {
		o.Cache = job.Cache
	}
	if o.Table == "" {
		o.Table = job.Table
	}
	o.Steps = job.Steps
	return nil
}

// UnmarshalYAML fills resolution and mitre_limit with the defaults if the
// keys are missing. Explicit values, including 0, are kept.
func (s *Step) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plain Step
	var raw struct {
		plain      `yaml:",inline"`
		Resolution *int     `yaml:"resolution"`
		MitreLimit *float64 `yaml:"mitre_limit"`
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*s = Step(raw.plain)
	s.Resolution = defaultResolution
	if raw.Resolution != nil {
		s.Resolution = *raw.Resolution
	}
	s.MitreLimit = defaultMitreLimit
	if raw.MitreLimit != nil {
		s.MitreLimit = *raw.MitreLimit
	}
	return nil
}

func (o *Options) check() []error {
	errs := []error{}
	if o.Input == "" {
		errs = append(errs, errors.New("missing input"))
	}
	if o.Output == "" && o.Cache == "" && o.Table == "" {
		errs = append(errs, errors.New("missing output, cache or table"))
	}
	if o.Table != "" && o.Connection == "" {
		errs = append(errs, errors.New("table requires -connection"))
	}
	if o.Srid != proj.WGS84 && o.Srid != proj.WebMercator {
		errs = append(errs, errors.New("only -srid=3857 or -srid=4326 are supported"))
	}
	for i, s := range o.Steps {
		if err := s.check(); err != nil {
			errs = append(errs, errors.Wrapf(err, "step %d", i+1))
		}
	}
	return errs
}

func (s *Step) check() error {
	switch s.Op {
	case OpBuffer:
		if _, err := vector.ParseCapStyle(s.CapStyle); err != nil {
			return err
		}
		if _, err := vector.ParseJoinStyle(s.JoinStyle); err != nil {
			return err
		}
		if s.Resolution < 1 {
			return errors.Errorf("invalid resolution %d", s.Resolution)
		}
		return nil
	case OpFilter:
		p, err := vector.ParsePredicate(s.Predicate)
		if err != nil {
			return err
		}
		if p == vector.ContainsProperly && !s.Prepared {
			return errors.New("contains_properly requires prepared: true")
		}
		if p == vector.Equals && s.Prepared {
			return errors.New("equals cannot be prepared")
		}
		if s.WKT == "" {
			return errors.New("filter without wkt")
		}
		return nil
	}
	_, err := vector.ParseUnaryOp(s.Op)
	return err
}

// BufferParams returns the buffer parameters of a checked buffer step.
func (s *Step) BufferParams() vector.BufferParams {
	capStyle, _ := vector.ParseCapStyle(s.CapStyle)
	joinStyle, _ := vector.ParseJoinStyle(s.JoinStyle)
	return vector.BufferParams{
		Distance:   s.Distance,
		Resolution: s.Resolution,
		CapStyle:   capStyle,
		JoinStyle:  joinStyle,
		MitreLimit: s.MitreLimit,
	}
}

func NewRunFlags(o *Options) *flag.FlagSet {
	flags := flag.NewFlagSet("run", flag.ContinueOnError)
	flags.StringVar(&o.ConfigFile, "config", "", "job file (yaml)")
	flags.StringVar(&o.Input, "input", "", "input file (.geojson or .osm.pbf)")
	flags.StringVar(&o.Output, "output", "", "output file (.geojson)")
	flags.StringVar(&o.CacheDir, "cachedir", defaultCacheDir, "cache directory")
	flags.StringVar(&o.Connection, "connection", "", "connection parameters")
	flags.IntVar(&o.Srid, "srid", defaultSrid, "target srs id (4326 or 3857)")
	flags.StringVar(&o.Httpprofile, "httpprofile", "", "bind address for profile server")
	flags.BoolVar(&o.Quiet, "quiet", false, "quiet log output")
	flags.BoolVar(&o.Debug, "debug", false, "debug log output")
	return flags
}

// ParseRun parses args of the run command and the referenced job file.
func ParseRun(args []string) (*Options, []error) {
	o := &Options{}
	flags := NewRunFlags(o)
	if err := flags.Parse(args); err != nil {
		return nil, []error{err}
	}
	if err := o.updateFromConfig(); err != nil {
		return nil, []error{err}
	}
	if errs := o.check(); len(errs) != 0 {
		return nil, errs
	}
	return o, nil
}

func UsageRun() {
	fmt.Fprintf(os.Stderr, "Usage: %s run [args]\n\n", os.Args[0])
	NewRunFlags(&Options{}).PrintDefaults()
	os.Exit(2)
}

func ReportErrors(errs []error) {
	fmt.Println("errors in config/options:")
	for _, err := range errs {
		fmt.Printf("\t%s\n", err)
	}
	os.Exit(1)
}
