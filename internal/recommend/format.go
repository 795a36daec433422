package recommend

import (
	"fmt"
	"strings"

	"sales-assistant/internal/model"
)

// formatRecommendation builds the numbered Markdown list sent to the user.
func formatRecommendation(products []model.Product) string {
	var bld strings.Builder
	bld.WriteString("🛒 *Based on our recent chat, here are a few things you might like:*\n\n")
	for i, p := range products {
		bld.WriteString(fmt.Sprintf("%d. [%s](%s) - 💵 %s\n\n", i+1, p.Title, p.Link, p.Price))
	}
	bld.WriteString("\n_(Enjoy browsing! 🚀)_")
	return bld.String()
}

// formatDigest builds the per-user digest sent to the admin chat.
func formatDigest(user model.User) string {
	var bld strings.Builder
	bld.WriteString(fmt.Sprintf("🛒 *Top Products for User %d*:\n\n", user.ChatID))
	for i, p := range user.TopProducts {
		bld.WriteString(fmt.Sprintf("%d. [%s](%s) - 💵 %s\n\n", i+1, p.Title, p.Link, p.Price))
	}
	return bld.String()
}
