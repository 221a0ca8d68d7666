package dtos

import (
	"time"

	"github.com/localnerve/imoveis/internal/models"
	"github.com/localnerve/imoveis/internal/types"
)

// PropertyFields is the wire field set of a Property, version 1.0.0
type PropertyFields struct {
	Type        *string `json:"tipo_imovel" validate:"required,choice=property_type"`
	Address     *string `json:"endereco" validate:"required,max=255"`
	Description *string `json:"descricao" null:"true"`
	Status      *string `json:"status_imovel" validate:"omitempty,choice=property_status"`

	UsableArea    *int `json:"area_util" validate:"required,gte=0,lte=2147483647"`
	TotalArea     *int `json:"area_total" validate:"omitempty,gte=0,lte=2147483647" null:"true"`
	Floor         *int `json:"andar" validate:"omitempty,gte=-2147483648,lte=2147483647" null:"true"`
	Bedrooms      *int `json:"numero_quartos" validate:"omitempty,gte=0,lte=2147483647"`
	Bathrooms     *int `json:"numero_banheiros" validate:"omitempty,gte=0,lte=2147483647"`
	ParkingSpaces *int `json:"vagas_garagem" validate:"omitempty,gte=0,lte=2147483647"`

	PowerAccountCode   *string        `json:"codigo_energia" validate:"omitempty,max=100" null:"true"`
	WaterAccountCode   *string        `json:"codigo_agua" validate:"omitempty,max=100" null:"true"`
	CondoAdministrator *string        `json:"administradora_condominio" validate:"omitempty,max=255" null:"true"`
	CondoFee           *types.Decimal `json:"condominio_valor" validate:"omitempty,money=10" swaggertype:"string" example:"1500.00"`

	AcquisitionDate  *types.Date    `json:"data_aquisicao" null:"true" swaggertype:"string" format:"date" example:"2026-01-31"`
	SaleDate         *types.Date    `json:"data_venda" null:"true" swaggertype:"string" format:"date" example:"2026-01-31"`
	AcquisitionValue *types.Decimal `json:"valor_aquisicao" validate:"omitempty,money=12" null:"true" swaggertype:"string" example:"1500.00"`
	SaleTax          *types.Decimal `json:"imposto_venda" validate:"omitempty,money=12" null:"true" swaggertype:"string" example:"1500.00"`
	NetSaleValue     *types.Decimal `json:"valor_liquido_venda" validate:"omitempty,money=12" null:"true" swaggertype:"string" example:"1500.00"`

	RentValue        *types.Decimal `json:"valor_aluguel" validate:"required,money=10" swaggertype:"string" example:"1500.00"`
	NetRentValue     *types.Decimal `json:"valor_liquido_aluguel" validate:"omitempty,money=10" null:"true" swaggertype:"string" example:"1500.00"`
	PropertyTaxValue *types.Decimal `json:"iptu_valor" validate:"omitempty,money=10" swaggertype:"string" example:"1500.00"`

	InsuranceExpiry *types.Date    `json:"seguro_vencimento" null:"true" swaggertype:"string" format:"date" example:"2026-01-31"`
	InsuranceBroker *string        `json:"seguro_corretora" validate:"omitempty,max=255" null:"true"`
	Insurer         *string        `json:"seguro_seguradora" validate:"omitempty,max=255" null:"true"`
	InsuranceValue  *types.Decimal `json:"seguro_valor" validate:"omitempty,money=10" null:"true" swaggertype:"string" example:"1500.00"`

	FireCertificateCode        *string     `json:"avcb_codigo" validate:"omitempty,max=100" null:"true"`
	FireCertificateIssued      *types.Date `json:"avcb_emissao" null:"true" swaggertype:"string" format:"date" example:"2026-01-31"`
	FireCertificateExpiry      *types.Date `json:"avcb_vencimento" null:"true" swaggertype:"string" format:"date" example:"2026-01-31"`
	ExtinguisherExpiry         *types.Date `json:"vencimento_extintores" null:"true" swaggertype:"string" format:"date" example:"2026-01-31"`
	PestControlExpiry          *types.Date `json:"vencimento_dedetizacao" null:"true" swaggertype:"string" format:"date" example:"2026-01-31"`
	WaterTankCertificateExpiry *types.Date `json:"vencimento_caixa_dagua" null:"true" swaggertype:"string" format:"date" example:"2026-01-31"`

	Images *string `json:"imagens" validate:"omitempty,max=255" null:"true"`
}

// PropertyInput is the body of a Property create or update
type PropertyInput struct {
	Payload
	PropertyFields
}

// PropertyOutput is the read representation of a Property
type PropertyOutput struct {
	ID uint64 `json:"id"`
	PropertyFields
	CreatedAt time.Time `json:"data_cadastro"`
}

// NewPropertyOutput builds the read representation of m
func NewPropertyOutput(m *models.Property) PropertyOutput {
	var out PropertyOutput
	Fill(&out, m)
	return out
}
