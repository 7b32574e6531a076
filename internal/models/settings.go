package models

// Settings — singleton shop configuration. At most one row ever exists;
// it is pinned to id = 1 and created lazily on first update.
type Settings struct {
	ID        uint   `gorm:"primaryKey" json:"id,omitempty"`
	ShopName  string `json:"shop_name"`
	Address   string `gorm:"type:text" json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	About     string `gorm:"type:text" json:"about"`
	MapsEmbed string `gorm:"type:text" json:"maps_embed"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Whatsapp  string `json:"whatsapp"`
}

// DefaultSettings is what GET /settings returns while no row exists.
// It is never persisted.
func DefaultSettings() Settings {
	return Settings{
		ShopName: "Vape Shop",
		Address: "Jl. Ciptomangunkusumo No. 2a Rt. 9\n" +
			"Kel. Simpang Tiga, Loa janan ilir\n" +
			"Samarinda, Kalimantan Timur",
		Phone: "+62 857-5234-8507",
		Email: "info@vapeshop.com",
		About: "Vape Shop Samarinda adalah toko vape terpercaya yang menyediakan " +
			"produk-produk berkualitas tinggi untuk para penggemar vaping di Kalimantan Timur.",
		Whatsapp: "+62 857-5234-8507",
	}
}
