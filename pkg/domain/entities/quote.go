package entities

import "github.com/shopspring/decimal"

// OrderInfo is free-form quotation metadata accepted on a request and
// echoed on the response. Persistence of orders is out of scope.
type OrderInfo struct {
	OrderNo         string `json:"order_no,omitempty"`
	ProjectName     string `json:"project_name,omitempty"`
	Location        string `json:"location,omitempty"`
	SalesRep        string `json:"sales_rep,omitempty"`
	DeliveryDate    string `json:"delivery_date,omitempty"`
	PaymentTerms    string `json:"payment_terms,omitempty"`
	PortOfDischarge string `json:"port_of_discharge,omitempty"`
}

// RequestFitting is one fitting line as it arrives on the wire, keyed
// by the full fitting code (e.g. "WFL-100A").
type RequestFitting struct {
	FittingType string `json:"fitting_type"`
	Quantity    int    `json:"quantity"`
	Position    string `json:"position,omitempty"`
}

// QuoteRequest is the raw transport-level request. Option fields are
// strings decoded into closed enumerations at the boundary before the
// engine sees them.
type QuoteRequest struct {
	OrderInfo  *OrderInfo     `json:"order_info,omitempty"`
	Dimensions TankDimensions `json:"dimensions"`

	PanelOptions struct {
		ProductType     string `json:"product_type"`
		Insulation      string `json:"insulation"`
		UseSidePanel1x1 bool   `json:"use_side_panel_1x1"`
		UsePartition1x1 bool   `json:"use_partition_panel_1x1"`
	} `json:"panel_options"`

	SteelOptions struct {
		SteelSkid        string `json:"steel_skid"`
		InternalMaterial string `json:"internal_material"`
		BoltsNuts        string `json:"bolts_nuts"`
		TieRodMaterial   string `json:"tie_rod_material"`
		TieRodSpec       string `json:"tie_rod_spec"`
	} `json:"steel_options"`

	AccessoryOptions struct {
		LevelIndicator         string `json:"level_indicator"`
		InternalLadderMaterial string `json:"internal_ladder_material"`
		ExternalLadderMaterial string `json:"external_ladder_material"`
	} `json:"accessory_options"`

	Fittings     []RequestFitting `json:"fittings"`
	ExchangeRate float64          `json:"exchange_rate"`
}

// CapacityInfo reports the headline volume figures for the configured
// tank. Actual capacity subtracts a fixed 0.2 m freeboard; surface area
// includes the partition walls.
type CapacityInfo struct {
	NominalCapacityM3 float64 `json:"nominal_capacity_m3"`
	ActualCapacityM3  float64 `json:"actual_capacity_m3"`
	SurfaceAreaM2     float64 `json:"surface_area_m2"`
	TotalLength       float64 `json:"total_length"`
	NumPartitions     int     `json:"num_partitions"`
}

// CostSummary rolls BOM line costs up by category. TotalConverted is
// TotalUSD multiplied by the caller-supplied exchange rate.
type CostSummary struct {
	Panels              decimal.Decimal `json:"panels"`
	SteelSkid           decimal.Decimal `json:"steel_skid"`
	BoltsNuts           decimal.Decimal `json:"bolts_nuts"`
	ExternalReinforcing decimal.Decimal `json:"external_reinforcing"`
	InternalReinforcing decimal.Decimal `json:"internal_reinforcing"`
	InternalTieRod      decimal.Decimal `json:"internal_tie_rod"`
	Etc                 decimal.Decimal `json:"etc"`
	Fittings            decimal.Decimal `json:"fittings"`
	TotalUSD            decimal.Decimal `json:"total_usd"`
	TotalConverted      decimal.Decimal `json:"total_converted"`
}

// WeightSummary rolls BOM line weights up into the three shipping
// buckets used by the reference model.
type WeightSummary struct {
	PanelsKg      decimal.Decimal `json:"panels_kg"`
	SteelKg       decimal.Decimal `json:"steel_kg"`
	AccessoriesKg decimal.Decimal `json:"accessories_kg"`
	TotalKg       decimal.Decimal `json:"total_kg"`
}

// QuoteResponse is the full calculation result.
type QuoteResponse struct {
	OrderInfo     *OrderInfo    `json:"order_info,omitempty"`
	Capacity      CapacityInfo  `json:"capacity"`
	BOM           []BOMItem     `json:"bom"`
	CostSummary   CostSummary   `json:"cost_summary"`
	WeightSummary WeightSummary `json:"weight_summary"`
}
