package domain

type City struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Lat       string `json:"lat"`
	Long      string `json:"long"`
	CountryID int    `json:"country_id"`
}

type District struct {
	ID     int    `json:"id"`
	CityID int    `json:"city_id"`
	Name   string `json:"name"`
	Lat    string `json:"lat"`
	Long   string `json:"long"`
}

// Address is a loading or unloading point of a shipment.
// Coordinates stay as the backend's decimal strings.
type Address struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Type             int      `json:"type"`
	TypeValue        string   `json:"type_value"`
	City             City     `json:"city"`
	District         District `json:"district"`
	Neighborhood     *string  `json:"neighborhood"`
	Address          string   `json:"address"`
	BuildingNumber   *string  `json:"building_number"`
	ForDirections    *string  `json:"for_directions"`
	Lat              string   `json:"lat"`
	Lng              string   `json:"lng"`
	Responsible      string   `json:"responsible"`
	ResponsiblePhone string   `json:"responsible_phone"`
	ResponsibleTitle string   `json:"responsible_title"`
	DeliveryAddress  bool     `json:"delivery_address"`
	CreatedAt        UnixTime `json:"created_at"`
}

// Place returns "City, District" with empty parts dropped.
func (a Address) Place() string {
	return joinPlace(a.City.Name, a.District.Name)
}

func joinPlace(city, district string) string {
	switch {
	case city == "":
		return district
	case district == "":
		return city
	}
	return city + ", " + district
}
