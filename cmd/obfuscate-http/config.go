package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/robtimus/obfuscation-http/headers"
	"github.com/robtimus/obfuscation-http/obfuscate"
	"github.com/robtimus/obfuscation-http/params"
)

// ruleFile is the YAML shape of the -config file:
//
//	limit: 64
//	truncated-indicator: "... (total: %d)"
//	parameters:
//	  - name: password
//	    mode: all
//	  - name: token
//	    mode: fixed-length
//	    length: 5
//	    case-insensitive: true
//	headers:
//	  - name: Authorization
//	    mode: fixed-value
//	    value: "<masked>"
type ruleFile struct {
	Limit              *int    `yaml:"limit"`
	TruncatedIndicator *string `yaml:"truncated-indicator"`
	Parameters         []rule  `yaml:"parameters"`
	Headers            []rule  `yaml:"headers"`
}

type rule struct {
	Name            string `yaml:"name"`
	Mode            string `yaml:"mode"`
	Length          int    `yaml:"length"`
	Value           string `yaml:"value"`
	CaseInsensitive bool   `yaml:"case-insensitive"`
}

func loadRules(path string) (*ruleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &rf, nil
}

func (r rule) obfuscator() (obfuscate.Obfuscator, error) {
	switch r.Mode {
	case "", "all":
		return obfuscate.All(), nil
	case "fixed-length":
		return obfuscate.FixedLength(r.Length), nil
	case "fixed-value":
		return obfuscate.FixedValue(r.Value), nil
	case "none":
		return obfuscate.None(), nil
	}
	return nil, fmt.Errorf("unknown obfuscation mode %q for %q", r.Mode, r.Name)
}

func (rf *ruleFile) paramObfuscator() (*params.Obfuscator, error) {
	b := params.NewBuilder()
	for _, r := range rf.Parameters {
		o, err := r.obfuscator()
		if err != nil {
			return nil, err
		}
		sensitivity := obfuscate.CaseSensitive
		if r.CaseInsensitive {
			sensitivity = obfuscate.CaseInsensitive
		}
		b.WithParameterSensitivity(r.Name, o, sensitivity)
	}
	if rf.Limit == nil {
		return b.Build()
	}
	lb := b.LimitTo(*rf.Limit)
	if rf.TruncatedIndicator != nil {
		if *rf.TruncatedIndicator == "" {
			lb.WithoutTruncatedIndicator()
		} else {
			lb.WithTruncatedIndicator(*rf.TruncatedIndicator)
		}
	}
	return lb.Build()
}

func (rf *ruleFile) headerObfuscator() (*headers.Obfuscator, error) {
	b := headers.NewBuilder()
	for _, r := range rf.Headers {
		o, err := r.obfuscator()
		if err != nil {
			return nil, err
		}
		b.WithHeader(r.Name, o)
	}
	return b.Build()
}
