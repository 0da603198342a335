package seed

import "github.com/prasetyadi-dev/portal_konten_be/internal/models"

var stories = []models.Story{
	{ID: 1, Name: "AI Agent", Label: "Lagi rame", Type: models.CategoryBerita, Palette: "indigo", Image: "https://images.unsplash.com/photo-1677442136019-21780ecad995", Viral: true},
	{ID: 2, Name: "Deploy Go", Label: "Tutorial", Type: models.CategoryTutorial, Palette: "emerald", Image: "https://images.unsplash.com/photo-1629654297299-c8506221ca97", Viral: false},
	{ID: 3, Name: "MoE", Label: "Paper pick", Type: models.CategoryRiset, Palette: "amber", Image: "https://images.unsplash.com/photo-1620712943543-bcc4688e7485", Viral: false},
	{ID: 4, Name: "Regulasi", Label: "Update", Type: models.CategoryBerita, Palette: "rose", Image: "https://images.unsplash.com/photo-1558494949-ef010cbdcc31", Viral: true},
}

func Stories() []models.Story {
	out := make([]models.Story, len(stories))
	copy(out, stories)
	return out
}
