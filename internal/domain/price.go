package domain

type Currency struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Value     Amount `json:"value"`
	UpdatedAt string `json:"updated_at"`
}

// PriceDetails decomposes a price into its base amount and the
// currency conversion applied by the backend.
type PriceDetails struct {
	BasePrice          Amount   `json:"base_price"`
	BaseCurrency       Currency `json:"base_currency"`
	ConvertingCurrency Currency `json:"converting_currency"`
	ConvertingExchange Amount   `json:"converting_exchange"`
}

type ShipperPrice struct {
	ID                  int          `json:"id"`
	FreightPrice        Amount       `json:"freight_price"`
	FreightPriceTaxFree Amount       `json:"freight_price_tax_free"`
	PriceDetails        PriceDetails `json:"price_details"`
	Status              int          `json:"status"`
	StatusValue         string       `json:"status_value"`
	GivingPriceUser     PersonRef    `json:"giving_price_user"`
	PriceConfirmingUser PersonRef    `json:"price_confirming_user"`
	CreatedAt           UnixTime     `json:"created_at"`
}

type CarrierPrice struct {
	ID                      int          `json:"id"`
	CarrierPrice            Amount       `json:"carrier_price"`
	CarrierPriceTaxFree     Amount       `json:"carrier_price_tax_free"`
	CarrierCashPriceTaxFree Amount       `json:"carrier_cash_price_tax_free"`
	CashPayment             bool         `json:"cash_payment"`
	PriceDetails            PriceDetails `json:"price_details"`
	GivingPriceUser         PersonRef    `json:"giving_price_user"`
	CreatedAt               UnixTime     `json:"created_at"`
}

type PriceOffers struct {
	CarrierPriceOffer          Amount `json:"carrier_price_offer"`
	CarrierPriceOfferCurrency  string `json:"carrier_price_offer_currency"`
	CarrierTargetPriceTaxFree  Amount `json:"carrier_target_price_tax_free"`
	CarrierTargetPriceCurrency string `json:"carrier_target_price_currency"`
}

// KamionShare is the platform's cut of the freight price.
type KamionShare struct {
	SharePercent  Amount `json:"kamion_share_percent"`
	Share         Amount `json:"kamion_share"`
	ShareCurrency string `json:"kamion_share_currency"`
}

// ShipmentPrice is the three-sided pricing of a shipment.
type ShipmentPrice struct {
	Shipper ShipperPrice `json:"shipper"`
	Carrier CarrierPrice `json:"carrier"`
	Offers  PriceOffers  `json:"offers"`
	Kamion  KamionShare  `json:"kamion"`
}
