package sqxpatch

import (
	"testing"

	"github.com/sqxtools/sqxpatch/config"
	"github.com/sqxtools/sqxpatch/template"
)

const testTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<Strategy>
  <BuildTradingOptions>
    <Params>
      <Param key="MaxTradesPerDay" class="Generic">5</Param>
    </Params>
  </BuildTradingOptions>
  <BuildMode>
    <generationType>genetic</generationType>
    <PopulationSize>80</PopulationSize>
    <MaxGenerations>20</MaxGenerations>
    <Islands>2</Islands>
  </BuildMode>
  <SLPTOptions>
    <MinSLInPips>10</MinSLInPips>
    <MaxSLInPips>50</MaxSLInPips>
  </SLPTOptions>
  <Symbol>EURUSD_M15</Symbol>
  <Data>
    <From>2020-01-01</From>
    <To>2024-12-31</To>
  </Data>
  <BacktestSettings>
    <TestPrecision>1</TestPrecision>
    <Spread>1.5</Spread>
    <Slippage>0</Slippage>
  </BacktestSettings>
  <FilterParams>
    <Conditions>
      <Condition use="true">
        <Left-Side>
          <Column-Value column="NetProfit" sampleType="10"/>
        </Left-Side>
        <Right-Side>
          <Numeric-Value value="500"/>
        </Right-Side>
      </Condition>
    </Conditions>
  </FilterParams>
</Strategy>
`

func mustDoc(t *testing.T, xml string) *template.Doc {
	t.Helper()
	doc, err := template.Parse([]byte(xml))
	if err != nil {
		t.Fatalf("template.Parse() error = %v", err)
	}
	return doc
}

func mustConfig(t *testing.T, yml string) *config.Document {
	t.Helper()
	cfg, err := config.Parse([]byte(yml))
	if err != nil {
		t.Fatalf("config.Parse() error = %v", err)
	}
	return cfg
}
