// fixtures.go
//
// Property-management back office data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of imoveis.
// imoveis is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// imoveis is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with imoveis.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.
package testutil

import "fmt"

// Payload is a request body under construction
type Payload map[string]interface{}

// With returns a copy of p with the given key set
func (p Payload) With(key string, value interface{}) Payload {
	out := make(Payload, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out[key] = value
	return out
}

// Without returns a copy of p without the given keys
func (p Payload) Without(keys ...string) Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// PropertyPayload is a valid Property body with only the required fields
func PropertyPayload() Payload {
	return Payload{
		"tipo_imovel":   "Apartamento",
		"endereco":      "Rua das Flores, 123",
		"area_util":     80,
		"valor_aluguel": "2500.00",
	}
}

// PartyPayload is a valid party body; n keeps the unique fields distinct
func PartyPayload(name string, n int) Payload {
	return Payload{
		"nome":      name,
		"email":     fmt.Sprintf("pessoa%d@example.com", n),
		"telefone":  "(11) 99999-0000",
		"cpf_cnpj":  fmt.Sprintf("123.456.789-%02d", n),
		"endereco":  "Av. Paulista, 1000",
		"profissao": "Engenheira",
	}
}

// ContractPayload is a valid Contract body
func ContractPayload(propertyID, lessorID, lesseeID uint64) Payload {
	return Payload{
		"imovel_id":                 propertyID,
		"locador_id":                lessorID,
		"locatario_id":              lesseeID,
		"data_inicio":               "2026-01-01",
		"data_fim":                  "2027-12-31",
		"data_assinatura":           "2025-12-15",
		"valor_aluguel":             "2500.00",
		"data_vencimento_pagamento": 10,
		"multa_rescisoria":          "7500.00",
	}
}

// PaymentPayload is a valid Payment body
func PaymentPayload(contractID uint64) Payload {
	return Payload{
		"contrato_id":     contractID,
		"data_pagamento":  "2026-02-10",
		"valor_pago":      "2500.00",
		"forma_pagamento": "PIX",
	}
}

// MaintenancePayload is a valid Maintenance body
func MaintenancePayload(propertyID uint64) Payload {
	return Payload{
		"imovel_id":        propertyID,
		"data_solicitacao": "2026-03-01",
		"descricao":        "Vazamento na cozinha",
	}
}

// DocumentPayload is a valid Document body with no references
func DocumentPayload() Payload {
	return Payload{
		"tipo_documento":      "Laudo de vistoria",
		"descricao_documento": "Vistoria de entrada",
		"data_documento":      "2026-01-02",
		"arquivo_documento":   "docs/vistoria-entrada.pdf",
	}
}
