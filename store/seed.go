package store

import "github.com/uguryukselwork/quickserve/models"

// SeedMenu is the initial catalog, used when no menu snapshot exists.
// Descriptions carry **bold** / *italic* markers rendered by clients.
func SeedMenu() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          "1",
			Name:        "Mercimek Çorbası",
			Description: "**Süzme mercimek**, tereyağlı sos ve *kıtır ekmek* ile hazırlanan klasik lezzet.",
			Price:       85,
			Category:    models.CategoryAppetizer,
			Image:       "https://images.unsplash.com/photo-1547592166-23ac45744acd?auto=format&fit=crop&q=80&w=400",
			Tags:        []string{"Vegan", "Popüler"},
		},
		{
			ID:          "2",
			Name:        "Izgara Köfte",
			Description: "Özel baharatlı **dana köfte**, közlenmiş biber ve *tereyağlı pilav* eşliğinde.",
			Price:       240,
			Category:    models.CategoryMain,
			Image:       "https://images.unsplash.com/photo-1529692236671-f1f6cf9683ba?auto=format&fit=crop&q=80&w=400",
			Tags:        []string{"Protein"},
		},
		{
			ID:          "3",
			Name:        "Kuzu Pirzola",
			Description: "**Kekikli pirzola**, fırın patates ve *ızgara mevsim sebzeleri* ile servis edilir.",
			Price:       450,
			Category:    models.CategoryMain,
			Image:       "https://images.unsplash.com/photo-1603048297172-c92544798d5e?auto=format&fit=crop&q=80&w=400",
			Tags:        []string{"Şefin Seçimi"},
		},
		{
			ID:          "4",
			Name:        "Gavurdağı Salatası",
			Description: "İnce kıyılmış **domates**, salatalık, *bol ceviz* ve özel nar ekşisi sosu.",
			Price:       120,
			Category:    models.CategoryAppetizer,
			Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&q=80&w=400",
			Tags:        []string{"Vejetaryen"},
		},
		{
			ID:          "5",
			Name:        "Künefe",
			Description: "Sıcak şerbetli, **Antep fıstıklı** ve *manda kaymaklı* çıtır kadayıf.",
			Price:       150,
			Category:    models.CategoryDessert,
			Image:       "https://images.unsplash.com/photo-1571506191034-851db66be41b?auto=format&fit=crop&q=80&w=400",
			Tags:        []string{"Klasik"},
		},
		{
			ID:          "6",
			Name:        "Ev Yapımı Ayran",
			Description: "Bol **köpüklü** ve taze *naneli* ferahlatıcı geleneksel ayran.",
			Price:       45,
			Category:    models.CategoryDrink,
			Image:       "https://images.unsplash.com/photo-1600718374662-0483d2b9d40d?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:          "7",
			Name:        "Osmanlı Şerbeti",
			Description: "**Kızılcık**, gül ve *tarçın* aromalı ferahlatıcı saray içeceği.",
			Price:       65,
			Category:    models.CategoryDrink,
			Image:       "https://images.unsplash.com/photo-1544145945-f904253d0c7b?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:          "8",
			Name:        "Adana Kebap",
			Description: "**Zırh kıyması** ile hazırlanan acılı kebap, közlenmiş domates ve *lavaş* eşliğinde.",
			Price:       280,
			Category:    models.CategoryMain,
			Image:       "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?auto=format&fit=crop&q=80&w=400",
			Tags:        []string{"Acılı", "Popüler"},
		},
	}
}
