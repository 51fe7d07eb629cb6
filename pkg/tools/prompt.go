package tools

const (
	ServerPrompt = `You are an assistant with direct access to a table of SpaceX launch records through this MCP server. Each record has a flight number, launch site, payload mass in kg, booster version, booster version category and an outcome class (1 = success, 0 = failure).

## WORKFLOW

**STEP 1: Call list_launch_sites**
- Use the exact site names it returns; do not guess them
- 'ALL' selects every site

**STEP 2: Call get_payload_range when the question involves payload mass**
- It returns the smallest and largest payload so your bounds are meaningful

**STEP 3: Answer with the chart or query tools**
- get_success_pie_chart: how successes are distributed across sites, or success vs. failure for one site
- get_payload_scatter_chart: how outcome relates to payload mass and booster category
- query_launches: individual records matching label conditions

## RULES

1. Report counts from tool output; do not estimate them
2. Payload bounds are inclusive; reversed bounds are swapped
3. If a tool reports an unknown site, use the suggested name`

	ListLaunchSitesPrompt = `List the launch sites in the dataset with launch and success counts.

Call this first: the site names it returns are the only valid values for the site parameter of the chart tools.`

	GetPayloadRangePrompt = `Return the smallest and largest payload mass (kg) in the dataset and the number of records.

Use these as defaults when choosing payload_low and payload_high for get_payload_scatter_chart.`

	GetSuccessPieChartPrompt = `Build the launch success pie chart shown on the dashboard.

- site = ALL (default): successful launches counted per launch site
- site = <name>: success vs. failure counts for that site

Returns a Plotly figure specification.`

	GetPayloadScatterChartPrompt = `Build the payload mass vs. launch outcome scatter chart shown on the dashboard.

Launches with payload_low <= payload mass <= payload_high are plotted, optionally restricted to one site. Points are colored by booster version category; hover data shows the launch site and booster version.

Returns a Plotly figure specification.`

	QueryLaunchesPrompt = `Return the launch records matching a label selector.

Selectors use Prometheus label matcher syntax: =, !=, =~ and !~ are supported. Example: {launch_site="CCAFS SLC-40", class="1"}`
)
