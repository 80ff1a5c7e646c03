package rest

import (
	"fmt"

	"github.com/panelworks/tankquote/pkg/domain/entities"
	"github.com/panelworks/tankquote/pkg/engine"
)

// decodeRequest turns a wire-level quote request into a fully decoded
// engine input. Unknown option strings fail closed to their documented
// defaults; each one produces a warning so the caller can see what was
// substituted.
func decodeRequest(req entities.QuoteRequest, defaultExchangeRate float64) (engine.Input, []string) {
	var warnings []string
	warn := func(field, value string) {
		warnings = append(warnings, fmt.Sprintf("unknown %s %q, using default", field, value))
	}

	in := engine.Input{
		Dimensions: req.Dimensions,
		Panel: entities.PanelOptions{
			Insulated:       req.PanelOptions.Insulation != "" && req.PanelOptions.Insulation != "None",
			UseSidePanel1x1: req.PanelOptions.UseSidePanel1x1,
			UsePartition1x1: req.PanelOptions.UsePartition1x1,
		},
		ExchangeRate: req.ExchangeRate,
	}
	if in.ExchangeRate <= 0 {
		in.ExchangeRate = defaultExchangeRate
	}

	var ok bool
	if in.Skid, ok = entities.ParseSkidType(req.SteelOptions.SteelSkid); !ok && req.SteelOptions.SteelSkid != "" {
		warn("steel_skid", req.SteelOptions.SteelSkid)
	}
	if in.Bolts, ok = entities.ParseBoltOption(req.SteelOptions.BoltsNuts); !ok && req.SteelOptions.BoltsNuts != "" {
		warn("bolts_nuts", req.SteelOptions.BoltsNuts)
	}
	if in.TieRodSpec, ok = entities.ParseTieRodSpec(req.SteelOptions.TieRodSpec); !ok && req.SteelOptions.TieRodSpec != "" {
		warn("tie_rod_spec", req.SteelOptions.TieRodSpec)
	}
	if in.Accessories.LevelIndicator, ok = entities.ParseLevelIndicator(req.AccessoryOptions.LevelIndicator); !ok && req.AccessoryOptions.LevelIndicator != "" {
		warn("level_indicator", req.AccessoryOptions.LevelIndicator)
	}
	if in.Accessories.InternalLadder, ok = entities.ParseInternalLadderMaterial(req.AccessoryOptions.InternalLadderMaterial); !ok && req.AccessoryOptions.InternalLadderMaterial != "" {
		warn("internal_ladder_material", req.AccessoryOptions.InternalLadderMaterial)
	}
	if in.Accessories.ExternalLadder, ok = entities.ParseExternalLadderMaterial(req.AccessoryOptions.ExternalLadderMaterial); !ok && req.AccessoryOptions.ExternalLadderMaterial != "" {
		warn("external_ladder_material", req.AccessoryOptions.ExternalLadderMaterial)
	}

	for _, f := range req.Fittings {
		if f.Quantity <= 0 {
			continue
		}
		typeCode, size := entities.ParseFittingCode(f.FittingType)
		in.Fittings = append(in.Fittings, entities.FittingSpec{
			Type:     typeCode,
			Size:     size,
			Quantity: f.Quantity,
		})
	}

	return in, warnings
}
