package domain

import "encoding/json"

type Sector struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TaxOffice struct {
	ID        int    `json:"id"`
	Code      int    `json:"code"`
	Name      string `json:"name"`
	City      City   `json:"city"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShipperSettings struct {
	Type                    int             `json:"type"`
	Tag                     *string         `json:"tag"`
	BillingCycle            int             `json:"billing_cycle"`
	MonthlyTransport        *string         `json:"monthly_transport"`
	UseBalance              bool            `json:"use_balance"`
	UseNegativeBalance      bool            `json:"use_negative_balance"`
	NegativeBalance         *Amount         `json:"negative_balance"`
	Settings                json.RawMessage `json:"settings,omitempty"`
	TaxOffice               TaxOffice       `json:"tax_office"`
	HeadOfficeCity          json.RawMessage `json:"head_office_city,omitempty"`
	RegionFuelPrice         Amount          `json:"region_fuel_price"`
	RegionFuelPriceCurrency string          `json:"region_fuel_price_currency"`
	Creator                 User            `json:"creator"`
	ProfitMargin            Amount          `json:"profit_margin"`
	CreatedAt               UnixTime        `json:"created_at"`
}

// Shipper is the company requesting transport of goods.
type Shipper struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	TaxNumber string          `json:"tax_number"`
	TaxOffice *string         `json:"tax_office"`
	Sector    Sector          `json:"sector"`
	Settings  ShipperSettings `json:"settings"`
	Phone     string          `json:"phone"`
	CreatedAt UnixTime        `json:"created_at"`
}

// Carrier is the company fulfilling the transport.
type Carrier struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Bank *string `json:"bank"`
	IBAN string  `json:"iban"`
}

type Driver struct {
	UserID    int    `json:"user_id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Type      int    `json:"type"`
	TypeValue string `json:"type_value"`
	Phone     string `json:"phone"`
}

func (d Driver) FullName() string { return joinName(d.Name, d.Surname) }

type Vehicle struct {
	ID             int     `json:"id"`
	Type           int     `json:"type"`
	TypeValue      string  `json:"type_value"`
	GroupType      *int    `json:"group_type"`
	GroupTypeValue *string `json:"group_type_value"`
	Plate          string  `json:"plate"`
}

type Trailer struct {
	ID               int    `json:"id"`
	VehicleType      int    `json:"vehicle_type"`
	VehicleTypeValue string `json:"vehicle_type_value"`
	Type             int    `json:"type"`
	TypeValue        string `json:"type_value"`
	Plate            string `json:"plate"`
}

// TimeInterval is the loading window, "HH:MM" strings.
type TimeInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Tonnage is a load weight range in tons.
type Tonnage struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ShipmentDetail holds the cargo requirements of a shipment.
type ShipmentDetail struct {
	ID                int      `json:"id"`
	ShipmentID        int      `json:"shipment_id"`
	VehicleType       int      `json:"vehicle_type"`
	VehicleTypeValue  string   `json:"vehicle_type_value"`
	GroupType         int      `json:"group_type"`
	GroupTypeValue    string   `json:"group_type_value"`
	TrailerType       []int    `json:"trailer_type"`
	TrailerTypeValue  []string `json:"trailer_type_value"`
	BaseType          int      `json:"base_type"`
	BaseTypeValue     string   `json:"base_type_value"`
	Tonnage           Tonnage  `json:"tonnage"`
	TypeOfGoods       string   `json:"type_of_goods"`
	WayOfLoading      int      `json:"way_of_loading"`
	WayOfLoadingValue string   `json:"way_of_loading_value"`
	CommodityAvgValue Amount   `json:"commodity_avg_value"`
	PackageType       int      `json:"package_type"`
	PackageTypeValue  string   `json:"package_type_value"`
	Distance          float64  `json:"distance"`
	Toll              Amount   `json:"toll"`
	FuelLiter         Amount   `json:"fuel_liter"`
	DepartureKM       *float64 `json:"departure_km"`
	DeliveryKM        *float64 `json:"delivery_km"`
	EmptyKM           *float64 `json:"empty_km"`
	IsInsured         bool     `json:"is_insured"`
}

type ShipmentStatus struct {
	ID        int      `json:"id"`
	Type      int      `json:"type"`
	TypeValue string   `json:"type_value"`
	CreatedAt UnixTime `json:"created_at"`
}

type DriverLocation struct {
	ID     int    `json:"id"`
	Driver User   `json:"driver"`
	Lat    string `json:"lat"`
	Lng    string `json:"lng"`
}

// Shipment is a single freight job, the aggregate root of the model.
// Values are read-only snapshots of the backend's answer.
type Shipment struct {
	ID                          int             `json:"id"`
	CustomerOrderNumber         *string         `json:"customer_order_number"`
	Shipper                     Shipper         `json:"shipper"`
	Carrier                     Carrier         `json:"carrier"`
	Driver                      Driver          `json:"driver"`
	Vehicle                     Vehicle         `json:"vehicle"`
	Code                        string          `json:"code"`
	Trailer                     Trailer         `json:"trailer"`
	DepartureAddress            Address         `json:"departure_address"`
	DeliveryAddress             Address         `json:"delivery_address"`
	PickUpDate                  UnixTime        `json:"pick_up_date"`
	AssignedTime                UnixTime        `json:"assigned_time"`
	HasAdditionalInvoice        bool            `json:"has_additional_invoice"`
	TimeInterval                TimeInterval    `json:"time_interval"`
	DeliveryDate                *UnixTime       `json:"delivery_date"`
	DeliveryTime                *string         `json:"delivery_time"`
	InvoiceReady                bool            `json:"invoice_ready"`
	Type                        int             `json:"type"`
	TypeValue                   string          `json:"type_value"`
	Status                      int             `json:"status"`
	IsInvoiceCreated            bool            `json:"is_invoice_created"`
	LatestStatus                ShipmentStatus  `json:"latest_status"`
	PlannedTransport            json.RawMessage `json:"planned_transport,omitempty"`
	PaymentType                 json.RawMessage `json:"payment_type,omitempty"`
	PaymentStatus               json.RawMessage `json:"payment_status,omitempty"`
	CarrierInvoiceUpload        bool            `json:"carrier_invoice_upload"`
	CarrierPayment              bool            `json:"carrier_payment"`
	CarrierPaymentStatus        int             `json:"carrier_payment_status"`
	CarrierPaymentStatusValue   string          `json:"carrier_payment_status_value"`
	CarrierPaymentDate          string          `json:"carrier_payment_date"`
	ShipmentDetail              ShipmentDetail  `json:"shipment_detail"`
	Timing                      json.RawMessage `json:"timing,omitempty"`
	Creator                     User            `json:"creator"`
	DriverLastLocation          DriverLocation  `json:"driver_last_location"`
	Price                       ShipmentPrice   `json:"price"`
	ViewCount                   *int            `json:"view_count"`
	ViewerCount                 *int            `json:"viewer_count"`
	CarrierPaymentReceiptUpload bool            `json:"carrier_payment_receipt_upload"`
	CreatedAt                   UnixTime        `json:"created_at"`
	LoadReception               int             `json:"load_reception"`
	LoadReceptionValue          string          `json:"load_reception_value"`
	Boosted                     bool            `json:"boosted"`
}

// Pagination mirrors the backend's meta block on list responses.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	From        int `json:"from"`
	To          int `json:"to"`
}

func (p Pagination) HasNext() bool { return p.CurrentPage < p.LastPage }

// ShipmentPage is one list response: the shipments plus optional paging.
type ShipmentPage struct {
	Shipments []Shipment
	Meta      *Pagination
}

// ShipmentQuery selects shipments on the list endpoint.
// Zero fields are omitted from the request.
type ShipmentQuery struct {
	FilterID int
	Page     int
	PerPage  int
}
