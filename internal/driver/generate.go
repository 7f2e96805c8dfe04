package driver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"deluded/internal/diag"
	"deluded/internal/project"
	"deluded/internal/render"
	"deluded/internal/source"
)

// GenerateOpts configures one documentation build.
type GenerateOpts struct {
	Dir            string // корневой каталог модуля
	Out            string // каталог вывода
	ProjectName    string
	Readme         string // путь к readme, может быть пустым
	Exclude        []string
	MaxDiagnostics int
	Cache          *DiskCache // nil отключает кэш
}

// GenerateResult summarizes a build.
type GenerateResult struct {
	Pages   []string // written files, index included
	Skipped int      // page renders avoided via cache
	Bag     *diag.Bag
}

type genModule struct {
	data     render.ModuleData
	digest   project.Digest
	children []*genModule
}

// Generate builds the whole documentation site: it maps the directory onto a
// module tree, extracts and classifies doc comments, and renders one HTML
// page per module plus an index. Unchanged modules are skipped when a cache
// is provided.
func Generate(ctx context.Context, opts GenerateOpts) (*GenerateResult, error) {
	tree, err := project.BuildTree(opts.Dir, opts.Exclude)
	if err != nil {
		return nil, err
	}

	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 256
	}
	result := &GenerateResult{Bag: diag.NewBag(opts.MaxDiagnostics)}

	fileSet := source.NewFileSetWithBase(opts.Dir)
	src, root, err := buildGenModule(ctx, fileSet, tree, result.Bag, opts.MaxDiagnostics)
	if err != nil {
		return nil, err
	}

	readme := ""
	if opts.Readme != "" {
		content, err := os.ReadFile(opts.Readme)
		if err != nil {
			diag.ReportWarning(diag.BagReporter{Bag: result.Bag}, diag.IOReadError, source.Span{},
				fmt.Sprintf("failed to read readme: %v", err))
		} else {
			readme = string(content)
		}
	}

	projectData := render.BuildProject(opts.ProjectName, readme, src)

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.Out, 0o755); err != nil {
		return nil, err
	}

	// индекс перерисовывается всегда
	var buf bytes.Buffer
	if err := renderer.RenderIndex(&buf, projectData); err != nil {
		return nil, err
	}
	indexPath := filepath.Join(opts.Out, "index.html")
	if err := os.WriteFile(indexPath, buf.Bytes(), 0o644); err != nil {
		return nil, err
	}
	result.Pages = append(result.Pages, indexPath)

	var renderAll func(m *genModule) error
	renderAll = func(m *genModule) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		outFile := render.PageName(m.data.Slug)
		outPath := filepath.Join(opts.Out, outFile)

		if opts.Cache != nil {
			var rec PageRecord
			if hit, err := opts.Cache.Get(m.digest, &rec); err == nil && hit && rec.OutFile == outFile {
				if _, err := os.Stat(outPath); err == nil {
					result.Skipped++
					for _, child := range m.children {
						if err := renderAll(child); err != nil {
							return err
						}
					}
					return nil
				}
			}
		}

		var page bytes.Buffer
		if err := renderer.RenderModule(&page, projectData, m.data); err != nil {
			return err
		}
		if err := os.WriteFile(outPath, page.Bytes(), 0o644); err != nil {
			return err
		}
		result.Pages = append(result.Pages, outPath)

		if opts.Cache != nil {
			pageHash := sha256.Sum256(page.Bytes())
			if err := opts.Cache.Put(m.digest, NewPageRecord(m.data.Name, outFile, pageHash)); err != nil {
				diag.ReportWarning(diag.BagReporter{Bag: result.Bag}, diag.IOCacheError, source.Span{},
					fmt.Sprintf("failed to cache page %s: %v", outFile, err))
			}
		}

		for _, child := range m.children {
			if err := renderAll(child); err != nil {
				return err
			}
		}
		return nil
	}

	for _, child := range root.children {
		if err := renderAll(child); err != nil {
			return result, err
		}
	}

	result.Bag.Sort()
	return result, nil
}

// LoadProject runs the extraction half of Generate without writing anything:
// it returns the template data model for interactive use.
func LoadProject(ctx context.Context, opts GenerateOpts) (render.ProjectData, *diag.Bag, error) {
	tree, err := project.BuildTree(opts.Dir, opts.Exclude)
	if err != nil {
		return render.ProjectData{}, nil, err
	}
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 256
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	fileSet := source.NewFileSetWithBase(opts.Dir)
	src, _, err := buildGenModule(ctx, fileSet, tree, bag, opts.MaxDiagnostics)
	if err != nil {
		return render.ProjectData{}, bag, err
	}

	readme := ""
	if opts.Readme != "" {
		if content, err := os.ReadFile(opts.Readme); err == nil {
			readme = string(content)
		}
	}
	bag.Sort()
	return render.BuildProject(opts.ProjectName, readme, src), bag, nil
}

// buildGenModule loads and classifies the module's root file, recurses into
// children and derives the module digest from file hashes.
func buildGenModule(ctx context.Context, fileSet *source.FileSet, mod project.Module, bag *diag.Bag, maxDiags int) (render.ModuleSource, *genModule, error) {
	if err := ctx.Err(); err != nil {
		return render.ModuleSource{}, nil, err
	}

	src := render.ModuleSource{Name: mod.Name}
	var contentHash project.Digest

	if mod.Root != "" {
		fileID, err := fileSet.Load(mod.Root)
		if err != nil {
			return render.ModuleSource{}, nil, fmt.Errorf("failed to load %s: %w", mod.Root, err)
		}
		doc := ExtractFile(fileSet, fileID, maxDiags)
		bag.Merge(doc.Bag)
		for _, block := range doc.Blocks {
			src.Blocks = append(src.Blocks, block.Parts)
		}
		contentHash = fileSet.Get(fileID).Hash
	}

	gm := &genModule{}
	childDigests := make([]project.Digest, 0, len(mod.Modules))
	for _, childMod := range mod.Modules {
		childSrc, childGen, err := buildGenModule(ctx, fileSet, childMod, bag, maxDiags)
		if err != nil {
			return render.ModuleSource{}, nil, err
		}
		src.Children = append(src.Children, childSrc)
		gm.children = append(gm.children, childGen)
		childDigests = append(childDigests, childGen.digest)
	}

	gm.digest = project.Combine(contentHash, childDigests...)
	gm.data = render.BuildModule(src)
	// дочерние genModule должны ссылаться на те же данные, что и страницы
	for i := range gm.children {
		gm.children[i].data = gm.data.Children[i]
	}
	return src, gm, nil
}
