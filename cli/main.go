package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2e7d32")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)

	purchasedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#30d158"))
)

// Model defines the application state
type Model struct {
	mainMenu    list.Model
	listsView   list.Model
	itemsView   table.Model
	currentList *ShoppingList
	recipeList  list.Model
	inventory   table.Model
	spinner     spinner.Model
	client      *ApiClient
	currentView string
	error       string
}

// item represents a main menu entry
type item struct {
	title, desc string
}

func (i item) FilterValue() string { return i.title }
func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }

// listItem represents a shopping list in the picker
type listItem struct {
	id    string
	title string
	desc  string
}

func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.desc }
func (i listItem) FilterValue() string { return i.title }

func initialModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	items := []list.Item{
		item{title: "Shopping Lists", desc: "View lists and tick off items"},
		item{title: "Recipes", desc: "Browse the family recipe book"},
		item{title: "Inventory", desc: "See what is in the pantry"},
		item{title: "Exit", desc: "Exit the application"},
	}
	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "ShopperWise CLI"

	listsView := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	listsView.Title = "Shopping Lists"

	recipeList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	recipeList.Title = "Recipes"

	itemColumns := []table.Column{
		{Title: " ", Width: 3},
		{Title: "Item", Width: 24},
		{Title: "Qty", Width: 10},
		{Title: "Category", Width: 16},
		{Title: "Est.", Width: 8},
	}
	itemsView := table.New(
		table.WithColumns(itemColumns),
		table.WithFocused(true),
		table.WithHeight(14),
	)

	inventoryColumns := []table.Column{
		{Title: "Ingredient", Width: 24},
		{Title: "Qty", Width: 10},
		{Title: "Location", Width: 12},
		{Title: "Status", Width: 10},
	}
	inventory := table.New(
		table.WithColumns(inventoryColumns),
		table.WithFocused(true),
		table.WithHeight(14),
	)

	return Model{
		mainMenu:    mainMenu,
		listsView:   listsView,
		itemsView:   itemsView,
		recipeList:  recipeList,
		inventory:   inventory,
		spinner:     s,
		client:      NewApiClient(),
		currentView: "main",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if m.currentView == "main" {
				if selected, ok := m.mainMenu.SelectedItem().(item); ok {
					switch selected.title {
					case "Exit":
						return m, tea.Quit
					case "Shopping Lists":
						m.currentView = "lists"
						return m, fetchLists(m.client)
					case "Recipes":
						m.currentView = "recipes"
						return m, fetchRecipes(m.client)
					case "Inventory":
						m.currentView = "inventory"
						return m, fetchInventory(m.client)
					}
				}
			} else if m.currentView == "lists" {
				if selected, ok := m.listsView.SelectedItem().(listItem); ok {
					m.currentView = "list_detail"
					return m, fetchList(m.client, selected.id)
				}
			}
		case " ", "p":
			if m.currentView == "list_detail" && m.currentList != nil {
				cursor := m.itemsView.Cursor()
				if cursor >= 0 && cursor < len(m.currentList.Items) {
					itemID := m.currentList.Items[cursor].ID
					return m, togglePurchased(m.client, m.currentList.ListID, itemID)
				}
			}
		case "esc":
			switch m.currentView {
			case "list_detail":
				m.currentView = "lists"
				return m, fetchLists(m.client)
			case "lists", "recipes", "inventory":
				m.currentView = "main"
			}
		}
	case listsMsg:
		m.listsView.SetItems(convertListsToItems(msg.lists))
		return m, nil
	case listDetailMsg:
		m.currentList = &msg.list
		m.itemsView.SetRows(convertItemsToRows(msg.list.Items))
		return m, nil
	case recipesMsg:
		m.recipeList.SetItems(convertRecipesToItems(msg.recipes))
		return m, nil
	case inventoryMsg:
		m.inventory.SetRows(convertInventoryToRows(msg.items))
		return m, nil
	case errorMsg:
		m.error = msg.err
		return m, nil
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.mainMenu.SetSize(msg.Width-h, msg.Height-v)
		m.listsView.SetSize(msg.Width-h, msg.Height-v)
		m.recipeList.SetSize(msg.Width-h, msg.Height-v)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "lists":
		m.listsView, cmd = m.listsView.Update(msg)
	case "list_detail":
		m.itemsView, cmd = m.itemsView.Update(msg)
	case "recipes":
		m.recipeList, cmd = m.recipeList.Update(msg)
	case "inventory":
		m.inventory, cmd = m.inventory.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	switch m.currentView {
	case "main":
		return docStyle.Render(m.mainMenu.View())
	case "lists":
		help := "\nPress 'enter' to open a list, 'esc' to go back\n"
		if m.error != "" {
			help += errorStyle.Render(m.error) + "\n"
		}
		return docStyle.Render(m.listsView.View() + help)
	case "list_detail":
		title := "Shopping List"
		if m.currentList != nil {
			title = m.currentList.Name
			if m.currentList.TargetStore != "" {
				title += " @ " + m.currentList.TargetStore
			}
		}
		help := "\nPress 'space' to tick an item off, 'esc' to go back\n"
		if m.error != "" {
			help += errorStyle.Render(m.error) + "\n"
		}
		summary := ""
		if m.currentList != nil {
			summary = "\n" + listSummary(*m.currentList)
		}
		return docStyle.Render(titleStyle.Render(title) + "\n\n" + m.itemsView.View() + summary + help)
	case "recipes":
		return docStyle.Render(m.recipeList.View() + "\nPress 'esc' to go back\n")
	case "inventory":
		return docStyle.Render(titleStyle.Render("Inventory") + "\n\n" + m.inventory.View() + "\nPress 'esc' to go back\n")
	default:
		return "Loading..."
	}
}

// Custom message types for the tea.Model
type listsMsg struct {
	lists []ShoppingList
}

type listDetailMsg struct {
	list ShoppingList
}

type recipesMsg struct {
	recipes []Recipe
}

type inventoryMsg struct {
	items []InventoryItem
}

type errorMsg struct {
	err string
}

func fetchLists(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		lists, err := client.GetShoppingLists()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching lists: %v", err)}
		}
		return listsMsg{lists: lists}
	}
}

func fetchList(client *ApiClient, id string) tea.Cmd {
	return func() tea.Msg {
		list, err := client.GetShoppingList(id)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching list: %v", err)}
		}
		return listDetailMsg{list: *list}
	}
}

func togglePurchased(client *ApiClient, listID, itemID string) tea.Cmd {
	return func() tea.Msg {
		list, err := client.TogglePurchased(listID, itemID)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error updating item: %v", err)}
		}
		return listDetailMsg{list: *list}
	}
}

func fetchRecipes(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		recipes, err := client.GetRecipes()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching recipes: %v", err)}
		}
		return recipesMsg{recipes: recipes}
	}
}

func fetchInventory(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		items, err := client.GetInventory()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching inventory: %v", err)}
		}
		return inventoryMsg{items: items}
	}
}

func convertListsToItems(lists []ShoppingList) []list.Item {
	items := make([]list.Item, len(lists))
	for i, l := range lists {
		purchased := 0
		for _, it := range l.Items {
			if it.Purchased {
				purchased++
			}
		}
		items[i] = listItem{
			id:    l.ListID,
			title: l.Name,
			desc:  fmt.Sprintf("%d items (%d purchased) - %s", len(l.Items), purchased, l.Status),
		}
	}
	return items
}

func convertItemsToRows(items []ShoppingListItem) []table.Row {
	rows := make([]table.Row, len(items))
	for i, it := range items {
		mark := " "
		if it.Purchased {
			mark = purchasedStyle.Render("✓")
		}
		qty := it.Quantity
		if it.Unit != "" {
			qty += " " + it.Unit
		}
		rows[i] = table.Row{mark, it.Name, qty, it.Category, fmt.Sprintf("£%.2f", it.EstimatedPrice)}
	}
	return rows
}

func convertRecipesToItems(recipes []Recipe) []list.Item {
	items := make([]list.Item, len(recipes))
	for i, r := range recipes {
		title := r.Name
		if r.IsFavourite {
			title = "★ " + title
		}
		desc := r.Cuisine
		if r.Servings > 0 {
			desc = fmt.Sprintf("%s - serves %d", r.Cuisine, r.Servings)
		}
		items[i] = listItem{id: r.RecipeID, title: title, desc: desc}
	}
	return items
}

func convertInventoryToRows(items []InventoryItem) []table.Row {
	rows := make([]table.Row, len(items))
	for i, it := range items {
		qty := fmt.Sprintf("%g", it.Quantity)
		if it.Unit != "" {
			qty += " " + it.Unit
		}
		rows[i] = table.Row{it.IngredientName, qty, it.Location, it.ExpiryStatus}
	}
	return rows
}

func listSummary(list ShoppingList) string {
	total := 0.0
	purchased := 0
	for _, it := range list.Items {
		total += it.EstimatedPrice
		if it.Purchased {
			purchased++
		}
	}
	return fmt.Sprintf("Estimated total: £%.2f   Purchased: %d/%d\n", total, purchased, len(list.Items))
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
