package engine

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/autotroph/gamecheck/internal/config"
	"github.com/autotroph/gamecheck/internal/report"
	"github.com/autotroph/gamecheck/internal/scene"
)

// evalResult is one indexed slot of the evaluation pass. Indexing by
// traversal position keeps the report order deterministic regardless of
// worker count.
type evalResult struct {
	rep report.ObjectReport
	err error
}

// Aggregate resolves the scan scope from the configuration, evaluates every
// resolved object, and merges the results into a new FileReport. A
// malformed object is skipped with an attributing file-level finding; an
// empty scope is reported as a file-level error. The scan always returns a
// report unless the context is cancelled.
func Aggregate(ctx context.Context, sc *scene.Scene, cfg *config.Config) (*report.FileReport, error) {
	rep := &report.FileReport{Scope: string(cfg.ScanMode)}

	objs := resolveScope(sc, cfg, rep)
	if len(objs) == 0 {
		rep.Findings = append(rep.Findings, report.NewFinding(report.SectionFile, report.Error,
			"Scan scope resolved no objects"))
		rep.Recompute()
		return rep, nil
	}

	results := make([]evalResult, len(objs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, obj := range objs {
		i, obj := i, obj
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := EvaluateObject(obj, cfg)
			results[i] = evalResult{rep: r, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan aborted: %w", err)
	}

	for i, res := range results {
		if res.err != nil {
			name := objs[i].Name
			if name == "" {
				name = fmt.Sprintf("object #%d", i)
			}
			rep.Findings = append(rep.Findings, report.NewFinding(report.SectionFile, report.Error,
				fmt.Sprintf("Skipped %s: %v", name, res.err)))
			continue
		}
		rep.Objects = append(rep.Objects, res.rep)
	}

	rep.Recompute()
	return rep, nil
}

// resolveScope selects the objects to evaluate in deterministic scene
// listing order. Collection scope may also contribute structure notes as
// file-level findings.
func resolveScope(sc *scene.Scene, cfg *config.Config, rep *report.FileReport) []*scene.Object {
	switch cfg.ScanMode {
	case config.ModeObject:
		target := cfg.TargetObject
		if target == "" {
			target = sc.ActiveObject
		}
		if obj := sc.ObjectByName(target); obj != nil {
			return []*scene.Object{obj}
		}
		return nil

	case config.ModeCollection:
		return resolveCollection(sc, cfg.TargetCollection, rep)

	default: // ModeFile
		objs := make([]*scene.Object, 0, len(sc.Objects))
		for i := range sc.Objects {
			objs = append(objs, &sc.Objects[i])
		}
		return objs
	}
}

// resolveCollection walks the collection graph from the named root,
// recursing into nested collections. A visited set makes the traversal
// cycle-safe: no collection is entered twice, so each reachable object is
// evaluated exactly once.
func resolveCollection(sc *scene.Scene, root string, rep *report.FileReport) []*scene.Object {
	if root == "" || (sc.CollectionByName(root) == nil && !anyMember(sc, root)) {
		return nil
	}

	visited := map[string]bool{}
	stack := []string{root}
	var nested []string
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[name] {
			continue
		}
		visited[name] = true
		if name != root {
			nested = append(nested, name)
		}

		if col := sc.CollectionByName(name); col != nil {
			// Push children in reverse so they are visited in
			// declaration order.
			for i := len(col.Children) - 1; i >= 0; i-- {
				stack = append(stack, col.Children[i])
			}
		}
	}

	var objs []*scene.Object
	hasArmature := false
	for i := range sc.Objects {
		obj := &sc.Objects[i]
		for _, member := range obj.Collections {
			if visited[member] {
				objs = append(objs, obj)
				if obj.HasArmature() {
					hasArmature = true
				}
				break
			}
		}
	}

	if len(nested) > 0 {
		rep.Findings = append(rep.Findings, report.NewFinding(report.SectionFile, report.Info,
			fmt.Sprintf("Collection %s contains nested collections: %s", root, strings.Join(nested, ", "))))
	}
	if len(objs) > 0 && !hasArmature {
		rep.Findings = append(rep.Findings, report.NewFinding(report.SectionFile, report.Warning,
			fmt.Sprintf("No armature present in collection %s", root)))
	}

	return objs
}

// anyMember reports whether any object claims membership in the named
// collection. Leaf collections often appear only as memberships, without a
// declared node in the collection graph.
func anyMember(sc *scene.Scene, name string) bool {
	for i := range sc.Objects {
		for _, member := range sc.Objects[i].Collections {
			if member == name {
				return true
			}
		}
	}
	return false
}
