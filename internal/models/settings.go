package models

type ShopSettings struct {
	ShopName  string `json:"shopName"`
	BillTheme string `json:"billTheme"`
}

func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		ShopName:  "Nail Salon",
		BillTheme: "classic",
	}
}
