package catalog

// SampleSalesFilename is the download name of the onboarding dataset
const SampleSalesFilename = "sample_nexus.csv"

// sampleSales is a fixed illustrative dataset, not derived from the rule table.
const sampleSales = `state_code,amount
CA,250000
CA,300000
NY,40000
TX,600000
WA,50
FL,2000
AL,260000
`

// SampleSalesCSV returns the onboarding sales dataset
func SampleSalesCSV() []byte {
	return []byte(sampleSales)
}
