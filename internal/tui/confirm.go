package tui

type confirmModel struct {
	count int
}

func (m confirmModel) View() string {
	content := "Удалить выполненные задачи (" + itoa(m.count) + ")?\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
