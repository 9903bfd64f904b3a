package models

// AdminConfigID is the fixed document id of the config singleton.
const AdminConfigID = "app"

// ExegesisModule selects the prompt shape of a generated study.
type ExegesisModule string

const (
	ModuleOriginals    ExegesisModule = "Originais (Hebraico/Grego)"
	ModuleFullExegesis ExegesisModule = "Exegese Completa"
	ModuleHomiletic    ExegesisModule = "Esboço Homilético"
	ModuleTeacher      ExegesisModule = "Professor de EBD"
	ModuleDictionary   ExegesisModule = "Dicionários & Chaves"
	ModuleSyntax       ExegesisModule = "Estrutura Sintática"
)

// AllModules lists every study module, in menu order.
func AllModules() []ExegesisModule {
	return []ExegesisModule{
		ModuleOriginals,
		ModuleFullExegesis,
		ModuleHomiletic,
		ModuleTeacher,
		ModuleDictionary,
		ModuleSyntax,
	}
}

// IsValid reports whether m is a known module.
func (m ExegesisModule) IsValid() bool {
	switch m {
	case ModuleOriginals, ModuleFullExegesis, ModuleHomiletic,
		ModuleTeacher, ModuleDictionary, ModuleSyntax:
		return true
	}
	return false
}

// TheologyLine is the doctrinal perspective passed to the AI gateway.
type TheologyLine string

const (
	TheologyCalvinist   TheologyLine = "Calvinista"
	TheologyArminian    TheologyLine = "Arminiana"
	TheologyPentecostal TheologyLine = "Pentecostal"
)

// IsValid reports whether t is a known theology line.
func (t TheologyLine) IsValid() bool {
	switch t {
	case TheologyCalvinist, TheologyArminian, TheologyPentecostal:
		return true
	}
	return false
}

// AdminConfig is the global content configuration edited in the admin
// console. It is a singleton document, overwritten wholesale on save.
// bson and json tag names are kept identical so the save path (which builds
// the document from the JSON encoding) stores exactly the keys the read path
// decodes.
type AdminConfig struct {
	CoverImageURL   string           `bson:"coverImageUrl" json:"coverImageUrl"`
	CoverTitle      string           `bson:"coverTitle" json:"coverTitle"`
	LibraryDriveURL string           `bson:"libraryDriveUrl" json:"libraryDriveUrl"`
	Announcement    string           `bson:"announcement" json:"announcement"`
	MaintenanceMode bool             `bson:"maintenanceMode" json:"maintenanceMode"`
	ActiveModules   []ExegesisModule `bson:"activeModules" json:"activeModules"`
}

// DefaultAdminConfig returns the seed configuration used until an admin
// saves one, and as the fallback when the remote read fails.
func DefaultAdminConfig() AdminConfig {
	return AdminConfig{
		CoverImageURL:   "/cover.png",
		CoverTitle:      "Estude as Escrituras Profundamente",
		LibraryDriveURL: "",
		Announcement:    "Dica do dia: Use a ferramenta de Exegese para analisar o texto original em grego e hebraico.",
		MaintenanceMode: false,
		ActiveModules:   AllModules(),
	}
}

// AdminConfigPatch is a partial config update.
type AdminConfigPatch struct {
	CoverImageURL   *string           `json:"coverImageUrl,omitempty"`
	CoverTitle      *string           `json:"coverTitle,omitempty"`
	LibraryDriveURL *string           `json:"libraryDriveUrl,omitempty"`
	Announcement    *string           `json:"announcement,omitempty"`
	MaintenanceMode *bool             `json:"maintenanceMode,omitempty"`
	ActiveModules   *[]ExegesisModule `json:"activeModules,omitempty"`
}

// Merge applies the patch over the config and returns the merged value.
func (c AdminConfig) Merge(patch AdminConfigPatch) AdminConfig {
	if patch.CoverImageURL != nil {
		c.CoverImageURL = *patch.CoverImageURL
	}
	if patch.CoverTitle != nil {
		c.CoverTitle = *patch.CoverTitle
	}
	if patch.LibraryDriveURL != nil {
		c.LibraryDriveURL = *patch.LibraryDriveURL
	}
	if patch.Announcement != nil {
		c.Announcement = *patch.Announcement
	}
	if patch.MaintenanceMode != nil {
		c.MaintenanceMode = *patch.MaintenanceMode
	}
	if patch.ActiveModules != nil {
		c.ActiveModules = *patch.ActiveModules
	}
	return c
}
