package ofx

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fairweather/tidewatch/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240605120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240501120000[0:GMT]
<DTEND>20240531120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240515120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024051501
<NAME>POS PURCHASE STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>INT
<DTPOSTED>20240520120000[0:GMT]
<TRNAMT>4.20
<FITID>2024052001
<NAME>INTEREST PAYMENT
</STMTTRN>
<STMTTRN>
<TRNTYPE>FEE
<DTPOSTED>20240525120000[0:GMT]
<TRNAMT>-15.00
<FITID>2024052501
<NAME>MONTHLY SERVICE FEE
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240531120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseFileBankStatement(t *testing.T) {
	p := NewParser()

	txns, err := p.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, txns, 3)

	starbucks := txns[0]
	assert.Equal(t, "2024051501", starbucks.ID)
	assert.Equal(t, "STARBUCKS STORE #1234", starbucks.Merchant, "POS prefix is stripped")
	assert.Equal(t, "1234567890", starbucks.AccountID)
	assert.InDelta(t, -25.50, starbucks.Amount, 0.001, "debits stay negative")
	assert.Equal(t, 2024, starbucks.Date.Year())
	assert.Equal(t, time.May, starbucks.Date.Month())
	assert.Empty(t, starbucks.CategoryID, "plain debits arrive uncategorized")

	interest := txns[1]
	assert.Equal(t, "revenue", interest.CategoryID)
	assert.InDelta(t, 4.20, interest.Amount, 0.001)

	fee := txns[2]
	assert.Equal(t, "bank-fees", fee.CategoryID)
}

func TestParseFileTolerantOfLeadingWhitespace(t *testing.T) {
	p := NewParser()

	txns, err := p.ParseFile(context.Background(), strings.NewReader("\n\n  "+sampleBankOFX))
	require.NoError(t, err)
	assert.Len(t, txns, 3)
}

func TestParseFileMixedCaseSeverity(t *testing.T) {
	p := NewParser()
	fixed := strings.ReplaceAll(sampleBankOFX, "<SEVERITY>INFO", "<SEVERITY>Info")

	txns, err := p.ParseFile(context.Background(), strings.NewReader(fixed))
	require.NoError(t, err)
	assert.Len(t, txns, 3)
}

func TestParseFileRejectsGarbage(t *testing.T) {
	p := NewParser()

	_, err := p.ParseFile(context.Background(), strings.NewReader("not an ofx file"))
	assert.ErrorIs(t, err, common.ErrImportFailed)
}

func TestMerchantNameCleanup(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "pos prefix", raw: "POS PURCHASE ACME TOOLS", want: "ACME TOOLS"},
		{name: "check card prefix", raw: "CHECK CARD DELTA AIR", want: "DELTA AIR"},
		{name: "date fragment", raw: "06/05 ACME TOOLS", want: "ACME TOOLS"},
		{name: "clean name passes through", raw: "Figma", want: "Figma"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripMerchant(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}
