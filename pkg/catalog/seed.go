package catalog

// Seed returns the built-in catalog content. It is used to populate the
// client before the first sync and is retained for the whole session when
// the remote service is unreachable at startup.
//
// Each call returns fresh slices so a caller may mutate them freely.
func Seed() Snapshot {
	return Snapshot{
		Artworks: seedArtworks(),
		Books:    seedBooks(),
		Journal:  seedJournal(),
	}
}

func seedArtworks() []Artwork {
	return []Artwork{
		{
			ID:          "art-silence-01",
			Title:       "The Weight of Silence",
			Description: "Large-format study in ash and gold leaf on linen.",
			Year:        2021,
			Category:    "painting",
			ImageURL:    "/images/artworks/weight-of-silence.jpg",
			Featured:    true,
			Technique:   "Mixed media on linen",
		},
		{
			ID:          "art-thresholds-02",
			Title:       "Thresholds",
			Description: "Diptych exploring doorways of the old quarter.",
			Year:        2019,
			Category:    "painting",
			ImageURL:    "/images/artworks/thresholds.jpg",
			Technique:   "Oil on canvas",
		},
		{
			ID:          "art-cartography-03",
			Title:       "Cartography of Memory",
			Description: "Etched copper plates over hand-ground pigment.",
			Year:        2023,
			Category:    "printmaking",
			ImageURL:    "/images/artworks/cartography-of-memory.jpg",
			Technique:   "Etching and aquatint",
		},
	}
}

func seedBooks() []Book {
	return []Book{
		{
			ID:          "book-anatomy-01",
			Title:       "An Anatomy of Light",
			Subtitle:    "Notes on painting and perception",
			Description: "Collected essays on the studio practice, 1998-2020.",
			Price:       42,
			CoverURL:    "/images/books/anatomy-of-light.jpg",
			Pages:       288,
			PublishDate: "2020-10-01",
		},
		{
			ID:          "book-margins-02",
			Title:       "Written in the Margins",
			Subtitle:    "A sketchbook companion",
			Description: "Facsimile reproductions of thirty years of sketchbooks.",
			Price:       65,
			CoverURL:    "/images/books/written-in-the-margins.jpg",
			Pages:       412,
			PublishDate: "2022-04-15",
		},
	}
}

func seedJournal() []JournalPost {
	return []JournalPost{
		{
			ID:      "post-varnish-01",
			Title:   "On Varnish and Patience",
			Excerpt: "Why the last layer takes the longest.",
			Content: "Every painting ends twice: once when the image settles, and once when the varnish does...",
			Date:    "2024-02-11",
			Tags:    []string{"studio", "technique"},
		},
		{
			ID:      "post-istanbul-02",
			Title:   "Letters from Istanbul",
			Excerpt: "Notes from the residency at the old han.",
			Content: "The light here arrives sideways, filtered through three centuries of dust...",
			Date:    "2023-09-03",
			Tags:    []string{"travel", "residency"},
		},
	}
}
