package config

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/burstarena/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Load reads the configuration at path, a file or a directory.
func Load(ctx context.Context, path string) (*Tournament, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Config loader started.", "path", path)

	files, err := findHCLFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found at %s", path)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	evalCtx := newEvalContext(os.Environ())
	parser := hclparse.NewParser()
	out := &Tournament{StrategyBlocks: make(map[string]*Strategy)}
	tournamentSource := ""

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if root.Tournament != nil {
			if tournamentSource != "" {
				return nil, fmt.Errorf("duplicate tournament block in %s, first defined in %s", file, tournamentSource)
			}
			tournamentSource = file
			if err := out.apply(root.Tournament); err != nil {
				return nil, fmt.Errorf("invalid tournament block in %s: %w", file, err)
			}
		}

		for _, block := range root.Strategies {
			if prev, exists := out.StrategyBlocks[block.Name]; exists {
				return nil, fmt.Errorf("duplicate strategy block '%s' in %s, first defined in %s", block.Name, file, prev.source)
			}
			out.StrategyBlocks[block.Name] = &Strategy{
				Name:         block.Name,
				Disqualified: block.Disqualified,
				body:         block.Options,
				evalCtx:      evalCtx,
				source:       file,
			}
		}
	}

	logger.Debug("Config loading complete.", "files", len(files), "strategy_blocks", len(out.StrategyBlocks))
	return out, nil
}

func (t *Tournament) apply(b *tournamentBlock) error {
	t.Rounds = b.Rounds
	t.ShownRounds = b.ShownRounds
	t.BoardLength = b.BoardLength
	t.Workers = b.Workers
	t.Strategies = b.Strategies
	if b.Budget != nil {
		d, err := time.ParseDuration(*b.Budget)
		if err != nil {
			return fmt.Errorf("budget: %w", err)
		}
		t.Budget = &d
	}
	return nil
}

// newEvalContext exposes environ, a list of KEY=value pairs, as the `env`
// object.
func newEvalContext(environ []string) *hcl.EvalContext {
	env := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
		Functions: map[string]function.Function{
			"coalesce": stdlib.CoalesceFunc,
			"format":   stdlib.FormatFunc,
			"lower":    stdlib.LowerFunc,
			"max":      stdlib.MaxFunc,
			"min":      stdlib.MinFunc,
			"upper":    stdlib.UpperFunc,
		},
	}
}

// findHCLFiles returns path itself when it is a file, or every .hcl file
// below it, sorted, when it is a directory.
func findHCLFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(p) == ".hcl" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
