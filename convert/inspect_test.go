package convert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testAddr1 = "1f9090aae28b8a3dceadf281b0f12828e676c326"
	testAddr2 = "d8da6bf26964af9d7eed9e03e53415d37aa96045"
)

func TestTranslateInspect(t *testing.T) {
	raw := `TxpoolInspect {
    ` + testAddr1 + `: {
        "5": TxpoolInspectSummary {
            to: Some(` + testAddr2 + `),
            value: 1000000000,
            gas: 21000,
            gas_price: 42,
        },
    },
}
`

	v, err := Translate(raw, NopReporter{})
	require.NoError(t, err)

	pending := asObject(t, v, "pending")
	addr := asObject(t, pending, "0x"+testAddr1)
	entry := asObject(t, addr, "5")

	require.Equal(t, "0x"+testAddr2, entry["to"])
	require.Equal(t, uint64(1000000000), entry["value"])
	require.Equal(t, uint64(21000), entry["gas"])
	require.Equal(t, uint64(42), entry["gas_price"])
}

func TestTranslateInspectAbsentTo(t *testing.T) {
	raw := `TxpoolInspect {
    ` + testAddr1 + `: {
        "0": TxpoolInspectSummary {
            to: None,
            value: 7,
        },
    },
}
`

	v, err := Translate(raw, NopReporter{})
	require.NoError(t, err)

	entry := asObject(t, asObject(t, asObject(t, v, "pending"), "0x"+testAddr1), "0")

	// The key is present with a JSON null, not omitted.
	to, ok := entry["to"]
	require.True(t, ok, "absent optional recipient should still produce the key")
	require.Nil(t, to)
	require.Equal(t, uint64(7), entry["value"])
}

func TestTranslateInspectEmpty(t *testing.T) {
	v, err := Translate("TxpoolInspect {\n}\n", NopReporter{})
	require.NoError(t, err)

	obj, ok := v.(map[string]interface{})
	require.True(t, ok)
	pending, ok := obj["pending"].(map[string]interface{})
	require.True(t, ok)
	require.Empty(t, pending)
}

func TestTranslateInspectBadNumbers(t *testing.T) {
	raw := `TxpoolInspect {
    ` + testAddr1 + `: {
        "1": TxpoolInspectSummary {
            value: not-a-number,
            gas: 99999999999999999999999999,
            gas_price: 10,
        },
    },
}
`

	v, err := Translate(raw, NopReporter{})
	require.NoError(t, err)

	entry := asObject(t, asObject(t, asObject(t, v, "pending"), "0x"+testAddr1), "1")

	// Unparseable numeric values are silently omitted, never errors.
	require.NotContains(t, entry, "value")
	require.NotContains(t, entry, "gas")
	require.Equal(t, uint64(10), entry["gas_price"])
}

func TestTranslateInspectMultipleAddresses(t *testing.T) {
	raw := `TxpoolInspect {
    ` + testAddr1 + `: {
        "1": TxpoolInspectSummary {
            value: 1,
        },
        "2": TxpoolInspectSummary {
            value: 2,
        },
    },
    ` + testAddr2 + `: {
        "9": TxpoolInspectSummary {
            value: 9,
        },
    },
}
`

	v, err := Translate(raw, NopReporter{})
	require.NoError(t, err)

	pending := asObject(t, v, "pending")
	require.Len(t, pending, 2)

	first := asObject(t, pending, "0x"+testAddr1)
	require.Len(t, first, 2)
	require.Equal(t, uint64(2), asObject(t, first, "2")["value"])

	second := asObject(t, pending, "0x"+testAddr2)
	require.Equal(t, uint64(9), asObject(t, second, "9")["value"])
}

func TestTranslateInspectUnknownLinesDropped(t *testing.T) {
	raw := `TxpoolInspect {
    ` + testAddr1 + `: {
        "3": TxpoolInspectSummary {
            blob_fee: 123,
            value: 5,
        },
    },
}
`

	v, err := Translate(raw, NopReporter{})
	require.NoError(t, err)

	entry := asObject(t, asObject(t, asObject(t, v, "pending"), "0x"+testAddr1), "3")
	require.Equal(t, map[string]interface{}{"value": uint64(5)}, entry)
}
