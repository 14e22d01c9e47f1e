package forage

// SpeciesCatalog maps a species identifier to a representative image URL.
// The catalog is fixed at build time; an identifier absent from the map
// resolves to an empty URL and the caller renders a card without an image.
type SpeciesCatalog map[string]string

// ImageURL returns the catalog entry for id, or "" when unknown.
func (c SpeciesCatalog) ImageURL(id string) string {
	return c[id]
}

var defaultCatalog = SpeciesCatalog{
	"porcini":              "https://upload.wikimedia.org/wikipedia/commons/7/77/Boletus_edulis_Etg2014.jpg",
	"pine_rings":           "https://upload.wikimedia.org/wikipedia/commons/9/98/Lactarius_deliciosus_2010.jpg",
	"slippery_jack":        "https://upload.wikimedia.org/wikipedia/commons/3/36/Suillus_luteus_2007.jpg",
	"morels":               "https://upload.wikimedia.org/wikipedia/commons/3/33/Morchella_esculenta_08.jpg",
	"chicken_of_the_woods": "https://upload.wikimedia.org/wikipedia/commons/a/a9/Laetiporus_sulphureus_JPG01.jpg",
	"wood_ear":             "https://upload.wikimedia.org/wikipedia/commons/9/9c/Auricularia_auricula-judae_77040.jpg",
	"turkey_tail":          "https://upload.wikimedia.org/wikipedia/commons/2/20/Trametes_versicolor_G4.jpg",
	"oyster_mushroom":      "https://upload.wikimedia.org/wikipedia/commons/6/62/Pleurotus_ostreatus_JPG7.jpg",
	"saffron_milk_cap":     "https://upload.wikimedia.org/wikipedia/commons/c/c8/Lactarius_deliciosus_group.jpg",
	"wood_blewit":          "https://upload.wikimedia.org/wikipedia/commons/8/8e/Lepista_nuda_2010_11.jpg",
}

// DefaultCatalog returns the built-in species catalog. The result is a copy
// so callers cannot mutate the build-time mapping.
func DefaultCatalog() SpeciesCatalog {
	out := make(SpeciesCatalog, len(defaultCatalog))
	for k, v := range defaultCatalog {
		out[k] = v
	}
	return out
}
