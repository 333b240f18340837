package models

import (
	"studio/storage"

	"gorm.io/gorm"
)

type rowDelete struct {
	model any
	query string
	args  []any
}

// DeletePlan describes every row and file that must go away together.
// Rows are removed in a single transaction; files are unlinked only after
// the commit, so a failed transaction never leaves records pointing at
// deleted files.
type DeletePlan struct {
	rows  []rowDelete
	raw   []rowDelete // raw SQL steps, e.g. join table cleanup
	Files []string
}

func (p *DeletePlan) DeleteRows(model any, query string, args ...any) {
	p.rows = append(p.rows, rowDelete{model: model, query: query, args: args})
}

func (p *DeletePlan) Exec(sql string, args ...any) {
	p.raw = append(p.raw, rowDelete{query: sql, args: args})
}

func (p *DeletePlan) DeleteFile(name string) {
	if name == "" {
		return
	}
	p.Files = append(p.Files, name, storage.ThumbName(name))
}

func (p *DeletePlan) Merge(other *DeletePlan) {
	p.rows = append(p.rows, other.rows...)
	p.raw = append(p.raw, other.raw...)
	p.Files = append(p.Files, other.Files...)
}

func (p *DeletePlan) Execute(dbc *gorm.DB, store storage.StorageAPI) error {
	err := dbc.Transaction(func(tx *gorm.DB) error {
		for _, r := range p.raw {
			if err := tx.Exec(r.query, r.args...).Error; err != nil {
				return err
			}
		}
		for _, r := range p.rows {
			if err := tx.Where(r.query, r.args...).Delete(r.model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, name := range p.Files {
		// Missing files are tolerated
		if store.Exists(name) {
			_ = store.Delete(name)
		}
	}
	return nil
}

// DeletePlan for a single portfolio item: its tag associations, comments,
// ratings, the row itself and its image files.
func (item *PortfolioItem) DeletePlan() *DeletePlan {
	plan := &DeletePlan{}
	plan.Exec("DELETE FROM portfolio_item_tags WHERE portfolio_item_id = ?", item.ID)
	plan.DeleteRows(&Comment{}, "portfolio_item_id = ?", item.ID)
	plan.DeleteRows(&Rating{}, "portfolio_item_id = ?", item.ID)
	plan.DeleteRows(&PortfolioItem{}, "id = ?", item.ID)
	plan.DeleteFile(item.ImageFilename)
	return plan
}

// DeletePlan for a tag: its associations first, then the tag row. Photos
// keep their remaining tags.
func (t *PhotoTag) DeletePlan() *DeletePlan {
	plan := &DeletePlan{}
	plan.Exec("DELETE FROM portfolio_item_tags WHERE photo_tag_id = ?", t.ID)
	plan.DeleteRows(&PhotoTag{}, "id = ?", t.ID)
	return plan
}

// DeletePlan for a category covers every portfolio item classified under it.
func (c *Category) DeletePlan(dbc *gorm.DB) (*DeletePlan, error) {
	var items []PortfolioItem
	if err := dbc.Where("category_id = ?", c.ID).Find(&items).Error; err != nil {
		return nil, err
	}
	plan := &DeletePlan{}
	for i := range items {
		plan.Merge(items[i].DeletePlan())
	}
	plan.DeleteRows(&Category{}, "id = ?", c.ID)
	plan.DeleteFile(c.ImageFilename)
	return plan, nil
}

// DeletePlan for a gallery covers the photos it contains.
func (g *Gallery) DeletePlan(dbc *gorm.DB) (*DeletePlan, error) {
	var items []PortfolioItem
	if err := dbc.Where("gallery_id = ?", g.ID).Find(&items).Error; err != nil {
		return nil, err
	}
	plan := &DeletePlan{}
	for i := range items {
		plan.Merge(items[i].DeletePlan())
	}
	plan.DeleteRows(&Gallery{}, "id = ?", g.ID)
	return plan, nil
}
