package prompt

func init() {
	register("extraction.general",
		"You are a financial data extraction expert. You return only valid JSON, no additional text.",
		`Extract structured financial data from the following document text.

IMPORTANT INSTRUCTIONS:
1. Extract ONLY the numerical values (no currency symbols, commas, or text)
2. All values should be in actual dollars (not thousands or millions)
3. If a value is stated in thousands, multiply by 1,000
4. If a value is stated in millions, multiply by 1,000,000
5. Use null for any values you cannot find or are uncertain about
6. Ensure mathematical relationships are consistent (e.g., gross_profit = revenue - cogs)

Company: {{.CompanyName}}
Year: {{.Year}}

Document Text:
{{.Text}}

Extract the following financial data and return as valid JSON:

{
    "company_name": "exact company name from document",
    "year": "year of the financial statement",
    "revenue": number_value_or_null,
    "cogs": number_value_or_null,
    "gross_profit": number_value_or_null,
    "operating_expenses": number_value_or_null,
    "operating_income": number_value_or_null,
    "net_income": number_value_or_null,
    "total_assets": number_value_or_null,
    "total_liabilities": number_value_or_null,
    "equity": number_value_or_null
}

Key terms to look for:
- Revenue: Total Revenue, Net Sales, Sales Revenue, Total Sales
- COGS: Cost of Goods Sold, Cost of Sales, Cost of Revenue
- Gross Profit: Gross Income, Gross Margin
- Operating Expenses: Operating Costs, SG&A, General and Administrative
- Operating Income: Operating Profit, EBIT, Income from Operations
- Net Income: Net Profit, Net Earnings, Profit After Tax
- Total Assets: Total Assets, Sum of Assets
- Total Liabilities: Total Liabilities, Total Debt
- Equity: Shareholders' Equity, Stockholders' Equity, Net Worth

Return only the JSON object, no additional text:`)

	register("extraction.saas",
		"You are a SaaS financial expert. You return only valid JSON, no additional text.",
		`Extract standard financial data AND SaaS-specific metrics from the following document.

Company: {{.CompanyName}}
Year: {{.Year}}

Document Text:
{{.Text}}

Return as valid JSON:

{
    "company_name": "exact company name",
    "year": "year",
    "revenue": number_value_or_null,
    "cogs": number_value_or_null,
    "gross_profit": number_value_or_null,
    "operating_expenses": number_value_or_null,
    "operating_income": number_value_or_null,
    "net_income": number_value_or_null,
    "total_assets": number_value_or_null,
    "total_liabilities": number_value_or_null,
    "equity": number_value_or_null,
    "recurring_revenue": number_value_or_null,
    "monthly_recurring_revenue": number_value_or_null,
    "annual_recurring_revenue": number_value_or_null,
    "customer_acquisition_cost": number_value_or_null,
    "customer_lifetime_value": number_value_or_null,
    "churn_rate": percentage_or_null
}

Look for SaaS-specific terms:
- ARR (Annual Recurring Revenue)
- MRR (Monthly Recurring Revenue)
- CAC (Customer Acquisition Cost)
- LTV (Customer Lifetime Value)
- Churn Rate, Retention Rate
- Subscription Revenue, Recurring vs Non-recurring Revenue

Return only the JSON object:`)

	register("extraction.retail",
		"You are a retail financial expert. You return only valid JSON, no additional text.",
		`Extract standard financial data AND retail-specific metrics from the following document.

Company: {{.CompanyName}}
Year: {{.Year}}

Document Text:
{{.Text}}

Return as valid JSON:

{
    "company_name": "exact company name",
    "year": "year",
    "revenue": number_value_or_null,
    "cogs": number_value_or_null,
    "gross_profit": number_value_or_null,
    "operating_expenses": number_value_or_null,
    "operating_income": number_value_or_null,
    "net_income": number_value_or_null,
    "total_assets": number_value_or_null,
    "total_liabilities": number_value_or_null,
    "equity": number_value_or_null,
    "same_store_sales": number_value_or_null,
    "comparable_store_sales": number_value_or_null,
    "inventory": number_value_or_null,
    "inventory_turnover": number_value_or_null,
    "store_count": number_value_or_null,
    "sales_per_square_foot": number_value_or_null
}

Look for retail-specific terms:
- Same Store Sales (SSS)
- Comparable Store Sales (Comp Sales)
- Inventory Turnover
- Sales per Square Foot
- Store Count, New Store Openings

Return only the JSON object:`)

	register("analysis.comparison",
		"You are a financial analyst. You write structured markdown analyses with clear sections and specific numbers.",
		`Compare the financial performance between two years and provide insights.

Company: {{.CompanyName}}

Current Year ({{.CurrentYear}}):
{{.CurrentData}}

Previous Year ({{.PreviousYear}}):
{{.PreviousData}}

Provide a comprehensive financial analysis covering:

1. REVENUE ANALYSIS: growth/decline percentage and key factors
2. PROFITABILITY ANALYSIS: gross, operating and net margin trends
3. KEY INSIGHTS: most significant changes, areas of concern, overall health
4. RECOMMENDATIONS: strategic focus areas and operational improvements`)

	register("analysis.summary",
		"You are a financial advisor. You write actionable markdown summaries with specific numbers and percentages.",
		`Provide a comprehensive summary of the company's financial performance over time.

Company: {{.CompanyName}}

Financial Data (Multiple Years):
{{.FinancialData}}

Create a detailed financial summary that includes:

1. OVERALL PERFORMANCE TRENDS: revenue trajectory, profitability evolution
2. FINANCIAL STRENGTH INDICATORS: consistent profit generation, stability
3. GROWTH PATTERNS: year-over-year growth rates and sustainability
4. RISK ASSESSMENT: volatility, potential red flags, resilience
5. STRATEGIC RECOMMENDATIONS: improvements, opportunities, risk mitigation`)
}
