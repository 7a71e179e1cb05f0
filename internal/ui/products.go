package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/stockdeck/internal/catalog"
	"github.com/five82/stockdeck/internal/inventory"
	"github.com/five82/stockdeck/internal/state"
)

// productsPage is the Products screen: a searchable, filterable product
// list with expandable bundles.
type productsPage struct {
	all      []catalog.Product
	stores   []catalog.Store
	filter   inventory.ProductFilter
	visible  []catalog.Product
	expanded *inventory.ExpansionSet
	selected int

	search    textinput.Model
	searching bool
}

func newProductsPage(snap state.Snapshot) *productsPage {
	search := textinput.New()
	search.Placeholder = "Search products or SKUs..."
	search.Prompt = "/ "
	search.CharLimit = 64

	p := &productsPage{
		all:      snap.Products,
		stores:   snap.Stores,
		expanded: inventory.NewExpansionSet(),
		search:   search,
	}
	p.refilter()
	return p
}

func (p *productsPage) refilter() {
	p.visible = p.filter.Apply(p.all)
	p.selected = clamp(p.selected, len(p.visible))
}

func (p *productsPage) setQuery(query string) {
	p.filter.Query = query
	p.refilter()
}

func (p *productsPage) setMode(mode inventory.FilterMode) {
	p.filter.Mode = mode
	p.refilter()
}

func (p *productsPage) selectedProduct() (catalog.Product, bool) {
	if len(p.visible) == 0 {
		return catalog.Product{}, false
	}
	return p.visible[p.selected], true
}

// toggleSelected expands or collapses the selected row. Only bundles have
// anything to expand.
func (p *productsPage) toggleSelected() (string, bool, bool) {
	product, ok := p.selectedProduct()
	if !ok || !product.IsBundle {
		return "", false, false
	}
	return product.ID, p.expanded.Toggle(product.ID), true
}

// handleProductsKey processes keyboard input for the Products page.
func (m Model) handleProductsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.products
	if p == nil {
		return m, nil
	}
	if p.searching {
		return m.handleProductSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		p.searching = true
		p.search.SetValue(p.filter.Query)
		p.search.CursorEnd()
		return m, p.search.Focus()

	case key.Matches(msg, m.keys.Escape):
		if p.filter.Query != "" {
			p.search.SetValue("")
			p.setQuery("")
		}

	case key.Matches(msg, m.keys.CycleFilter):
		p.setMode(p.filter.Mode.Next())
		m.log.Debug().Str("mode", p.filter.Mode.String()).Msg("product filter changed")

	case key.Matches(msg, m.keys.FilterAll):
		p.setMode(inventory.FilterAll)

	case key.Matches(msg, m.keys.FilterLow):
		p.setMode(inventory.FilterLow)

	case key.Matches(msg, m.keys.FilterBndl):
		p.setMode(inventory.FilterBundles)

	case key.Matches(msg, m.keys.Down):
		p.selected = clamp(p.selected+1, len(p.visible))

	case key.Matches(msg, m.keys.Up):
		p.selected = clamp(p.selected-1, len(p.visible))

	case key.Matches(msg, m.keys.Top):
		p.selected = 0

	case key.Matches(msg, m.keys.Bottom):
		p.selected = clamp(len(p.visible)-1, len(p.visible))

	case key.Matches(msg, m.keys.Expand):
		if id, expanded, ok := p.toggleSelected(); ok {
			m.log.Debug().Str("product", id).Bool("expanded", expanded).Msg("bundle toggled")
		}
	}
	return m, nil
}

// handleProductSearchInput filters live while the search input has focus.
func (m Model) handleProductSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.products
	switch {
	case key.Matches(msg, m.keys.Confirm):
		p.searching = false
		p.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		p.searching = false
		p.search.Blur()
		p.search.SetValue("")
		p.setQuery("")
		return m, nil
	}

	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	p.setQuery(p.search.Value())
	return m, cmd
}

func (m Model) renderProducts(width, height int) string {
	p := m.products
	if p == nil {
		return ""
	}
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.SurfaceAlt)
	sbg := styles.WithBackground(m.theme.SurfaceAlt)
	inner := width - 2

	var lines []string
	lines = append(lines, m.renderFilterBar(p, sbg, bg))
	if p.searching {
		lines = append(lines, bg.FillLine(p.search.View(), inner))
	} else if p.filter.Query != "" {
		lines = append(lines, bg.Render("Search:", sbg.MutedText)+bg.Space()+bg.Render(p.filter.Query, sbg.AccentText))
	} else {
		lines = append(lines, bg.Render("Press / to search products or SKUs", sbg.FaintText))
	}
	lines = append(lines, "")

	if len(p.visible) == 0 {
		lines = append(lines, bg.Render("No products found", sbg.MutedText))
		return m.renderTitledBox(m.productsTitle(), strings.Join(lines, "\n"), width, height, true)
	}

	lines = append(lines, m.productHeader(sbg, bg))
	rows := m.productRows(p, inner)

	// Keep the selected row in view.
	budget := max(height-2-len(lines), 1)
	start := 0
	for i, r := range rows {
		if r.product == p.selected {
			if i >= budget {
				start = i - budget + 1
			}
			break
		}
	}
	end := min(start+budget, len(rows))
	for _, r := range rows[start:end] {
		lines = append(lines, r.text)
	}
	return m.renderTitledBox(m.productsTitle(), strings.Join(lines, "\n"), width, height, true)
}

func (m Model) productsTitle() string {
	p := m.products
	return fmt.Sprintf("Products (%d of %d)", len(p.visible), len(p.all))
}

func (m Model) renderFilterBar(p *productsPage, styles Styles, bg BgStyle) string {
	counts := p.filter.ModeCounts(p.all)
	var parts []string
	for _, mode := range []inventory.FilterMode{inventory.FilterAll, inventory.FilterLow, inventory.FilterBundles} {
		label := fmt.Sprintf(" %s (%d) ", mode.Label(), counts[mode])
		if mode == p.filter.Mode {
			parts = append(parts, styles.Selected.Bold(true).Render(label))
		} else {
			parts = append(parts, bg.Render(label, styles.MutedText))
		}
	}
	return bg.Join(parts, " ")
}

const (
	colName  = 30
	colSKU   = 9
	colTotal = 6
	colStore = 8
)

func (m Model) productHeader(styles Styles, bg BgStyle) string {
	cols := []string{padRight("Product", colName), padRight("SKU", colSKU), padLeft("Total", colTotal)}
	for _, s := range m.products.stores {
		cols = append(cols, padLeft(truncate(s.Channel.Label(), colStore), colStore))
	}
	return bg.Render("  "+strings.Join(cols, " "), styles.FaintText.Bold(true))
}

type productRow struct {
	product int // index into visible
	text    string
}

func (m Model) productRows(p *productsPage, width int) []productRow {
	var rows []productRow
	for i, product := range p.visible {
		selected := i == p.selected
		rows = append(rows, productRow{product: i, text: m.productLine(product, selected, width)})
		if product.IsBundle && p.expanded.IsExpanded(product.ID) {
			for _, c := range product.BundleComponents {
				rows = append(rows, productRow{product: i, text: m.componentLine(c, width)})
			}
		}
	}
	return rows
}

func (m Model) productLine(product catalog.Product, selected bool, width int) string {
	bgColor := m.theme.SurfaceAlt
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	marker := "  "
	if product.IsBundle {
		marker = "▸ "
		if m.products.expanded.IsExpanded(product.ID) {
			marker = "▾ "
		}
	}
	name := padRight(truncate(product.Name, colName), colName)
	sku := padRight(truncate(product.SKU, colSKU), colSKU)
	total := padLeft(fmt.Sprintf("%d", product.TotalStock), colTotal)

	textStyle, mutedStyle := styles.Text, styles.MutedText
	if selected {
		textStyle = styles.Selected
		mutedStyle = styles.Selected
	}
	band := inventory.ClassifyStock(product.TotalStock).String()

	parts := []string{
		bg.Render(marker, styles.AccentText) + bg.Render(name, textStyle),
		bg.Render(sku, mutedStyle),
		bg.Render(total, styles.StateText(band).Bold(true)),
	}
	for _, s := range m.products.stores {
		qty := inventory.StockFor(product, s.ID)
		cell := padLeft(fmt.Sprintf("%d", qty), colStore)
		parts = append(parts, bg.Render(cell, styles.StateText(inventory.ClassifyStock(qty).String())))
	}
	if product.IsBundle {
		parts = append(parts, bg.Render("bundle", styles.InfoText))
	}
	return bg.FillLine(bg.Join(parts, " "), width)
}

func (m Model) componentLine(c catalog.BundleComponent, width int) string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	styles := m.theme.Styles()
	text := fmt.Sprintf("    └ %d× %s", c.Quantity, c.ProductName)
	return bg.FillLine(bg.Render(text, styles.MutedText), width)
}

func (m Model) productsHints() []string {
	if m.products != nil && m.products.searching {
		return []string{"type to filter", "enter keep", "esc clear"}
	}
	return []string{"/ search", "f filter", "a/w/b all/low/bundles", "enter expand bundle"}
}
