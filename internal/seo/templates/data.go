package templates

// Placeholders: {Topic} is the capitalized main topic, {topic} the raw main
// topic, {topic2}/{topic3} the secondary and third topics, {audience} the
// target audience.

var defaultBuckets = map[string]Bucket{
	"article": {
		Titles: []string{
			"The Ultimate Guide to {Topic} for {audience}",
			"{Topic}: What Every {audience} Need to Know in 2026",
			"10 Proven {Topic} Insights Backed by Research",
			"How {Topic} Is Reshaping {topic2} This Year",
			"{Topic} Explained: A Deep Dive for {audience}",
			"Why {Topic} and {topic2} Matter More Than Ever",
			"The Complete {Topic} Breakdown for Busy {audience}",
			"{Topic} Trends: Data-Driven Findings You Can Use",
			"From {topic2} to {topic3}: Understanding {Topic}",
			"The State of {Topic}: Key Takeaways for {audience}",
			"{Topic} Myths Debunked by the Latest Studies",
			"Everything {audience} Should Know About {Topic}",
			"A Practical Look at {Topic} and {topic2}",
			"{Topic} in Focus: Lessons for Modern {audience}",
		},
		Descriptions: []string{
			"Explore our in-depth guide to {topic} for {audience}. Learn how {topic2} and {topic3} fit together, with research-backed insights you can apply today.",
			"Discover what the latest findings say about {topic}. This article breaks down {topic2} for {audience} in clear, actionable terms.",
			"Everything {audience} need to know about {topic}, from {topic2} fundamentals to advanced {topic3} strategies. Read the full analysis.",
			"Our comprehensive {topic} article covers {topic2}, {topic3}, and more. Written for {audience} who want depth without the jargon.",
			"Get a clear, data-driven view of {topic}. We examine {topic2} trends and what they mean for {audience} this year.",
			"A detailed look at {topic} and why it matters for {audience}. Includes practical {topic2} takeaways and expert commentary.",
			"Understand {topic} in minutes. This guide distills {topic2} research into plain-language advice for {audience}.",
			"What does {topic} mean for {audience}? We analyze {topic2} and {topic3} to separate signal from noise.",
			"Read our expert analysis of {topic}, with a close look at {topic2} and where {topic3} is heading next.",
		},
		Social: []string{
			"New article: everything {audience} need to know about {topic} 📖 #{Topic} #{topic2}",
			"We went deep on {topic} so you don't have to. Key findings inside. #{Topic}",
			"What the latest {topic} research actually says — thread-worthy takeaways for {audience}. #{topic2}",
			"Just published: our complete guide to {topic} and {topic2}. #ContentStrategy",
			"{Topic} explained in plain language. Perfect read for {audience}. #{Topic} #Insights",
			"The {topic} landscape is shifting. Here's what {audience} should watch. #{topic2}",
			"Hot off the press: {Topic} trends and data for {audience} 📊 #{Topic}",
			"Our new deep dive connects {topic} with {topic2}. Worth a read. #{Topic}",
			"Curious about {topic}? Start with our latest article. #{Topic} #{topic3}",
		},
	},
	"blog": {
		Titles: []string{
			"My Honest Take on {Topic} (and What I'd Do Differently)",
			"{Topic}: Lessons I Learned the Hard Way",
			"What Nobody Tells {audience} About {Topic}",
			"5 {Topic} Mistakes I Made So You Don't Have To",
			"{Topic} and {topic2}: A Personal Journey",
			"How I Finally Got {Topic} Right",
			"The {Topic} Experiment: 30 Days Later",
			"Let's Talk About {Topic}, {audience}",
			"Why I Changed My Mind About {Topic}",
			"{Topic} for Real People: No Fluff, Just {topic2}",
			"Behind the Scenes: Our {Topic} Story",
			"Things I Wish I Knew About {Topic} Sooner",
			"{Topic} vs {topic2}: My Unfiltered Comparison",
			"A Beginner's Diary of {Topic}",
		},
		Descriptions: []string{
			"My unfiltered thoughts on {topic} after months of trial and error. If you're one of the {audience} wrestling with {topic2}, this post is for you.",
			"I tried every {topic} approach I could find. Here's what actually worked, what flopped, and how {topic2} changed my perspective.",
			"A personal look at {topic} written for {audience}. Real stories, real mistakes, and the {topic2} lessons that stuck.",
			"This week on the blog: {topic}, {topic2}, and why I almost gave up on {topic3}. Grab a coffee and read along.",
			"Honest reflections on {topic} from someone who's been there. {audience} will recognize these {topic2} struggles.",
			"What happens when you commit to {topic} for a month? I documented everything, including the {topic2} surprises.",
			"My journey with {topic} hasn't been pretty, but the {topic2} takeaways are worth sharing with fellow {audience}.",
			"Thinking about {topic}? Read my story first. Spoiler: {topic2} matters more than anyone admits.",
			"From skeptic to believer: how {topic} won me over, and what {audience} can learn from my {topic2} missteps.",
		},
		Social: []string{
			"New post is live! My honest take on {topic} 👀 #{Topic} #Blog",
			"I made every {topic} mistake so you don't have to. Full story on the blog. #{topic2}",
			"Real talk about {topic} for {audience}. Link in bio. #{Topic}",
			"30 days of {topic}. Here's what happened. #{Topic} #{topic2}",
			"Finally wrote up my {topic} journey. It's messy but honest. #{Topic}",
			"Why I changed my mind about {topic} — new blog post. #{topic2}",
			"Fellow {audience}: this {topic} post is for you ☕ #{Topic}",
			"The {topic} lessons nobody shares. On the blog now. #{Topic}",
			"My {topic} vs {topic2} comparison is up. No fluff, promise. #{Topic}",
		},
	},
	"product": {
		Titles: []string{
			"Shop {Topic}: Premium Quality for {audience}",
			"{Topic} That {audience} Actually Love",
			"Introducing the New {Topic} Collection",
			"{Topic} Built for {topic2} and Beyond",
			"Upgrade Your {topic2} with Our {Topic} Range",
			"{Topic}: Free Shipping, Easy Returns",
			"The {Topic} {audience} Have Been Waiting For",
			"Best-Selling {Topic} for Every Budget",
			"{Topic} Essentials: From {topic2} to {topic3}",
			"Discover {Topic} Designed Around {audience}",
			"Limited Stock: {Topic} Favorites Back in Store",
			"{Topic} Made Simple for {audience}",
			"Top-Rated {Topic} with a Full Warranty",
			"Your {topic2} Deserves Better {Topic}",
		},
		Descriptions: []string{
			"Shop our {topic} collection built for {audience}. Premium {topic2} quality, fast shipping, and hassle-free returns on every order.",
			"Discover {topic} products designed around {topic2}. Trusted by thousands of {audience}, backed by a full warranty.",
			"Our best-selling {topic} range combines {topic2} performance with everyday value. Order today and see the difference.",
			"Looking for {topic} that lasts? Every item in our {topic2} line is tested for quality and loved by {audience}.",
			"From {topic2} to {topic3}, our {topic} catalog has something for every budget. Free shipping on qualifying orders.",
			"Upgrade your {topic2} setup with {topic} built to perform. Easy checkout, fast delivery, and support {audience} can count on.",
			"The {topic} essentials {audience} reach for every day. Browse the collection and find your new favorite.",
			"Premium {topic} without the premium markup. See why {audience} rate our {topic2} line five stars.",
			"New arrivals in {topic} are here. Limited stock, full warranty, and returns made simple for {audience}.",
		},
		Social: []string{
			"Just dropped: the new {topic} collection 🛍️ #{Topic} #NewArrivals",
			"{audience}, your {topic2} called. It wants better {topic}. Shop now. #{Topic}",
			"Best-selling {topic} is back in stock — don't wait! #{Topic} #{topic2}",
			"Free shipping on all {topic} this week only 🚚 #{Topic}",
			"The {topic} that {audience} can't stop talking about. #{Topic}",
			"Upgrade your {topic2} game with our top-rated {topic}. #{Topic}",
			"Five stars, full warranty, zero hassle. That's our {topic}. #{Topic}",
			"Limited stock alert: {topic} favorites are going fast ⏰ #{topic2}",
			"New in: {topic} designed for {audience}. Link in bio. #{Topic}",
		},
	},
	"service": {
		Titles: []string{
			"Professional {Topic} Services for {audience}",
			"{Topic} Experts You Can Trust",
			"Book Your {Topic} Consultation Today",
			"{Topic} Solutions Tailored to {audience}",
			"We Handle {Topic} So You Can Focus on {topic2}",
			"{Topic} Services: Fast Quotes, Clear Pricing",
			"Your Partner for {Topic} and {topic2}",
			"Expert {Topic} Support for Growing {audience}",
			"{Topic} Done Right, the First Time",
			"Trusted {Topic} Specialists Near You",
			"Full-Service {Topic} for {audience}",
			"{Topic} Help Without the Headache",
			"From {topic2} to {topic3}: Complete {Topic} Care",
			"Schedule {Topic} Service in Minutes",
		},
		Descriptions: []string{
			"Our {topic} team delivers tailored solutions for {audience}. Book a free consultation and get a clear quote on {topic2} services today.",
			"Trusted {topic} specialists serving {audience} for over a decade. From {topic2} to {topic3}, we handle it all.",
			"Need {topic} help? We offer fast scheduling, transparent pricing, and {topic2} expertise {audience} rely on.",
			"Full-service {topic} support designed around your goals. Our team makes {topic2} simple so you can focus on what matters.",
			"Professional {topic} services with a satisfaction guarantee. See why {audience} choose us for {topic2} year after year.",
			"From the first consultation to final delivery, our {topic} process keeps {audience} informed. Get your {topic2} quote today.",
			"We take the stress out of {topic}. Flexible appointments, upfront pricing, and {topic2} results that speak for themselves.",
			"Your {topic} partner for the long haul. We pair {topic2} expertise with service {audience} actually enjoy.",
			"Book {topic} service in minutes. Our {topic2} specialists are ready when {audience} need them most.",
		},
		Social: []string{
			"Booking is open! Schedule your {topic} consultation today 📅 #{Topic}",
			"We handle {topic} so {audience} can focus on {topic2}. #{Topic} #Services",
			"Fast quotes, clear pricing, expert {topic} care. That's our promise. #{Topic}",
			"Why do {audience} keep choosing our {topic} team? Find out. #{topic2}",
			"From {topic2} to {topic3}, our {topic} crew has you covered. #{Topic}",
			"{Topic} done right, the first time. Book now. #{Topic}",
			"Your {topic} questions, answered by real experts. DM us! #{Topic}",
			"New to {topic}? Start with a free consultation. #{Topic} #{topic2}",
			"Trusted {topic} specialists, right in your corner. #{Topic}",
		},
	},
	"video": {
		Titles: []string{
			"Watch: {Topic} Explained in Under 10 Minutes",
			"{Topic} Tutorial for {audience} (Step by Step)",
			"The {Topic} Video Every {audience} Should See",
			"{Topic} vs {topic2}: We Put Them to the Test",
			"New Episode: Mastering {Topic}",
			"{Topic} Secrets Revealed on Camera",
			"Behind the Scenes of {Topic}",
			"{Topic} Crash Course: From {topic2} to {topic3}",
			"We Tried {Topic} for a Week. Here's the Footage",
			"{Topic} Walkthrough for Complete Beginners",
			"Top 10 {Topic} Moments, Ranked",
			"Live Demo: {Topic} in Action",
			"{Topic} Q&A: Your Questions, Answered",
			"The Truth About {Topic} (Full Video)",
		},
		Descriptions: []string{
			"Watch our full {topic} tutorial built for {audience}. We cover {topic2} step by step, with timestamps so you can jump right in.",
			"In this episode we break down {topic} on camera, from {topic2} basics to advanced {topic3} techniques. Subscribe for more.",
			"See {topic} in action. Our latest video walks {audience} through {topic2} with a live demo and real results.",
			"New on the channel: {topic} explained in under ten minutes. Perfect for {audience} short on time but big on {topic2}.",
			"We tested {topic} against {topic2} so you don't have to. Watch the full comparison and judge for yourself.",
			"Go behind the scenes of {topic}. This video shows {audience} the {topic2} details nobody else films.",
			"Your {topic} questions, answered on camera. We tackle {topic2}, {topic3}, and everything in between.",
			"A complete {topic} crash course for {audience}. Hit play and master {topic2} by the end of the video.",
			"Watch the truth about {topic} unfold. Honest footage, real {topic2} numbers, no edits that hide the mess.",
		},
		Social: []string{
			"New video is up! {Topic} explained in under 10 minutes 🎬 #{Topic}",
			"We put {topic} to the test on camera. Watch now! #{Topic} #{topic2}",
			"{audience}, this {topic} tutorial is for you. Link in bio 📺 #{Topic}",
			"Behind the scenes of {topic}. You won't believe the footage. #{Topic}",
			"Live demo: {topic} in action. Hit play! #{Topic} #{topic2}",
			"Your {topic} questions, answered in our new Q&A episode. #{Topic}",
			"Crash course alert: {topic} from {topic2} to {topic3} 🎥 #{Topic}",
			"We tried {topic} for a week and filmed everything. #{Topic}",
			"New episode drops now. {Topic} secrets, revealed. #{topic2}",
		},
	},
	"email": {
		Titles: []string{
			"Your Weekly {Topic} Digest Is Here",
			"{Topic} News {audience} Can't Miss",
			"Inside This Issue: {Topic} and {topic2}",
			"The {Topic} Update You Asked For",
			"{Topic} Tips, Straight to Your Inbox",
			"Don't Open This Unless You Care About {Topic}",
			"This Week in {Topic}: 3 Things to Know",
			"{Topic} Insider: Exclusive for {audience}",
			"Your {Topic} Briefing, {topic2} Edition",
			"Fresh {Topic} Ideas for Your Week",
			"{Topic} Highlights: What {audience} Missed",
			"One Big {Topic} Idea (2-Minute Read)",
			"The {Topic} Newsletter, Now with More {topic2}",
			"{Topic} Roundup: Curated for {audience}",
		},
		Descriptions: []string{
			"Your weekly {topic} digest, curated for {audience}. This issue covers {topic2}, {topic3}, and one idea worth forwarding.",
			"Get {topic} insights delivered straight to your inbox. Join thousands of {audience} reading our {topic2} newsletter.",
			"This week's {topic} briefing: three {topic2} stories, one {topic3} deep dive, and zero filler. Read it in five minutes.",
			"The {topic} update {audience} actually open. Fresh {topic2} ideas every week, unsubscribe anytime.",
			"Inside this issue: {topic} trends, a {topic2} case study, and our pick of the week for {audience}.",
			"One big {topic} idea, delivered weekly. Short enough to read with coffee, useful enough for {audience} to save.",
			"Don't miss what's moving in {topic}. Our newsletter keeps {audience} ahead on {topic2} and {topic3}.",
			"Curated {topic} highlights for busy {audience}. We read everything so your inbox only gets the good {topic2} stuff.",
			"Your {topic} insider briefing is here. Exclusive {topic2} takes you won't find on the open web.",
		},
		Social: []string{
			"This week's {topic} newsletter just landed 📬 #{Topic} #Newsletter",
			"Join thousands of {audience} getting {topic} tips by email. #{Topic}",
			"One big {topic} idea, every week, two-minute read. Subscribe! #{topic2}",
			"Inbox feeling empty? Our {topic} digest fixes that. #{Topic}",
			"The {topic} roundup {audience} forward to their teams. #{Topic}",
			"Fresh {topic} and {topic2} ideas, delivered weekly ✉️ #{Topic}",
			"Our {topic} insider issue is out. Did you get yours? #{Topic}",
			"Zero filler, all {topic}. That's the newsletter promise. #{topic2}",
			"Subscribe for {topic} briefings built for {audience}. #{Topic}",
		},
	},
	"social": {
		Titles: []string{
			"{Topic} Content That Stops the Scroll",
			"Tag Someone Who Needs This {Topic} Tip",
			"The {Topic} Post Everyone's Sharing",
			"{Topic} in 15 Seconds or Less",
			"POV: You Finally Understand {Topic}",
			"Hot Take: {Topic} Beats {topic2} Every Time",
			"{Topic} Hacks {audience} Swear By",
			"Save This {Topic} Post for Later",
			"The {Topic} Trend {audience} Can't Ignore",
			"{Topic} Before and After: The Results",
			"3 {Topic} Facts That Sound Fake but Aren't",
			"Your Daily Dose of {Topic}",
			"{Topic} Challenge: Are You In?",
			"Stop Scrolling: {Topic} News for {audience}",
		},
		Descriptions: []string{
			"The {topic} content {audience} keep sharing. Follow for daily {topic2} tips, hot takes, and the occasional {topic3} meme.",
			"Your feed needed more {topic}. We deliver quick {topic2} wins for {audience} who scroll with purpose.",
			"Save-worthy {topic} posts, every day. From {topic2} hacks to {topic3} trends, we keep {audience} in the loop.",
			"The {topic} trend is real and {audience} are all in. See why our {topic2} posts keep going viral.",
			"Quick {topic} hits for busy {audience}. Fifteen seconds of {topic2} value, zero fluff.",
			"Join the {topic} conversation. Daily {topic2} takes, community challenges, and engagement that actually means something.",
			"Before and after: what {topic} really does. Follow along as we document {topic2} results for {audience}.",
			"Hot takes on {topic}, served fresh. Agree or argue in the comments, {audience} — we read everything.",
			"Your daily dose of {topic} starts here. Tag a friend who needs these {topic2} tips.",
		},
		Social: []string{
			"Tag someone who needs this {topic} tip 👇 #{Topic} #{topic2}",
			"POV: you finally get {topic}. #{Topic} #Relatable",
			"Save this {topic} post — thank us later 🔖 #{Topic}",
			"Hot take: {topic} beats {topic2}. Fight us in the comments. #{Topic}",
			"The {topic} challenge starts today. Are you in? #{Topic}Challenge",
			"15 seconds of pure {topic} value ⏱️ #{Topic} #{topic2}",
			"3 {topic} facts that sound fake but aren't. #{Topic}",
			"{audience}, your daily {topic} dose is served. #{Topic}",
			"This {topic} before-and-after says it all 📈 #{topic2}",
		},
	},
	"landing": {
		Titles: []string{
			"Get Started with {Topic} Today",
			"{Topic} Made Simple for {audience}",
			"Try {Topic} Free for 14 Days",
			"The {Topic} Platform {audience} Trust",
			"Unlock {Topic} in Minutes, Not Months",
			"{Topic} + {topic2}: One Powerful Solution",
			"Join Thousands of {audience} Using {Topic}",
			"Your {Topic} Journey Starts Here",
			"{Topic} Without the Learning Curve",
			"See Why {audience} Switch to Our {Topic}",
			"Claim Your Free {Topic} Trial",
			"{Topic} That Scales with Your {topic2}",
			"Limited Time: {Topic} Onboarding Included",
			"Everything {audience} Need for {Topic}",
		},
		Descriptions: []string{
			"Start your {topic} journey in minutes. No credit card required, full {topic2} access, and onboarding built for {audience}.",
			"The {topic} platform thousands of {audience} trust. Sign up free and see {topic2} results in your first week.",
			"Get {topic} without the learning curve. Our guided setup takes {audience} from zero to {topic2} in one afternoon.",
			"Claim your free 14-day {topic} trial. Full {topic2} features, cancel anytime, loved by {audience} worldwide.",
			"One platform for {topic}, {topic2}, and {topic3}. See why {audience} keep switching to us.",
			"Limited-time offer: {topic} with onboarding included. Get started today and unlock {topic2} for your whole team.",
			"Your {topic} stack, simplified. Everything {audience} need for {topic2} in one clean dashboard.",
			"Scale {topic} as you grow. Flexible plans, transparent pricing, and {topic2} support when {audience} need it.",
			"Sign up in sixty seconds and start your {topic} free trial. No credit card, no commitment, just {topic2} results.",
		},
		Social: []string{
			"14 days of {topic}, completely free. Claim your trial 🚀 #{Topic}",
			"No credit card. No catch. Just {topic} for {audience}. #{Topic} #FreeTrial",
			"Thousands of {audience} already switched to our {topic}. Your move. #{Topic}",
			"{Topic} without the learning curve. Get started today. #{topic2}",
			"Your {topic} journey starts with one click. #{Topic}",
			"Limited time: {topic} onboarding included free 🎁 #{Topic}",
			"One platform. All your {topic} and {topic2} needs. #{Topic}",
			"See why {audience} rate our {topic} five stars. #{Topic}",
			"Sign up in 60 seconds. Unlock {topic} today. #{Topic} #{topic2}",
		},
	},
	"charitable": {
		Titles: []string{
			"Help Us Bring {Topic} to Those Who Need It",
			"Your Gift Powers {Topic} in Our Community",
			"{Topic}: Every Donation Makes a Difference",
			"Join {audience} Supporting {Topic} Today",
			"Volunteer for {Topic} and Change Lives",
			"The {Topic} Fund: Where Your Giving Goes",
			"Together We Can Transform {Topic}",
			"{Topic} Needs You: Ways to Give Back",
			"From {topic2} to Hope: Our {Topic} Mission",
			"Double Your Impact on {Topic} This Month",
			"Stories of {Topic}: Lives Changed by Giving",
			"Be the Reason {Topic} Reaches More People",
			"{Topic} Champions: How {audience} Are Helping",
			"A Little {Topic} Goes a Long Way",
		},
		Descriptions: []string{
			"Your donation powers {topic} programs in communities that need them most. Join {audience} giving to our {topic2} mission today.",
			"Every gift to the {topic} fund goes directly to {topic2} support. Read the stories of lives changed and give what you can.",
			"Volunteer, donate, or share: three ways {audience} can back our {topic} mission. Together we make {topic2} possible.",
			"This month, every {topic} donation is matched. Double your impact on {topic2} and help us reach more people.",
			"See where your giving goes. Our {topic} fund publishes full {topic2} transparency reports for {audience} who ask.",
			"From {topic2} to hope: our {topic} mission has supported thousands. Be part of the next chapter.",
			"A little {topic} support goes a long way. Monthly gifts from {audience} keep our {topic2} programs running year-round.",
			"Join the {topic} champions. Whether you give time or money, {audience} like you keep {topic2} alive.",
			"Help bring {topic} to those who need it most. One donation, one volunteer hour, one share — it all counts toward {topic2}.",
		},
		Social: []string{
			"Every gift counts. Support {topic} today ❤️ #{Topic} #GiveBack",
			"Your donation = real {topic} impact. See the stories. #{Topic}",
			"Volunteers wanted! Help us bring {topic} to more people. #{Topic}",
			"This month only: all {topic} donations matched 2x 🙌 #{Topic}",
			"Join {audience} championing {topic} in our community. #{topic2}",
			"From {topic2} to hope — that's the {topic} mission. #{Topic}",
			"Be the reason {topic} reaches one more person. #{Topic} #Donate",
			"A little {topic} goes a long way. Give today. #{Topic}",
			"Where does your giving go? Full {topic} transparency inside. #{topic2}",
		},
	},
	"financial": {
		Titles: []string{
			"Smart {Topic} Strategies for {audience}",
			"{Topic}: Building Long-Term Value",
			"Plan Your {Topic} Future with Confidence",
			"{Topic} Basics Every {audience} Should Master",
			"Grow Your {topic2} with Proven {Topic} Methods",
			"The {Topic} Checklist for {audience}",
			"{Topic} and {topic2}: Balancing the Books",
			"Make Your {Topic} Work Harder",
			"{Topic} Planning Made Clear",
			"Avoid These Common {Topic} Pitfalls",
			"Your {Topic} Questions, Answered by Experts",
			"{Topic} Milestones for Every Life Stage",
			"Rethinking {Topic}: A Modern Approach",
			"{Topic} Tools {audience} Rely On",
		},
		Descriptions: []string{
			"Build long-term value with smart {topic} strategies. Our guide helps {audience} balance {topic2} and plan with confidence.",
			"Master the {topic} basics, from {topic2} fundamentals to {topic3} planning. Clear explanations written for {audience}.",
			"Make your {topic} work harder. We break down {topic2} approaches {audience} can put to work this quarter.",
			"Avoid the common {topic} pitfalls that cost {audience} the most. Our {topic2} checklist keeps your plan on track.",
			"Plan your {topic} future with clarity. Expert answers on {topic2}, {topic3}, and the milestones that matter.",
			"The modern approach to {topic}. We rethink {topic2} conventions and show {audience} what actually moves the needle.",
			"Your {topic} questions, answered. From {topic2} to {topic3}, our experts cover what {audience} ask most.",
			"Grow steadily with proven {topic} methods. Practical {topic2} guidance for every life stage.",
			"The {topic} tools {audience} rely on, reviewed and ranked. Find the right fit for your {topic2} goals.",
		},
		Social: []string{
			"Smart {topic} strategies for {audience}, no jargon included 💼 #{Topic}",
			"Is your {topic} plan on track? Run through our checklist. #{Topic}",
			"The {topic} pitfalls that cost {audience} the most. Avoid them. #{topic2}",
			"Make your {topic} work harder. New guide is live. #{Topic}",
			"{Topic} milestones for every life stage 📊 #{Topic} #Planning",
			"Your {topic} questions, answered by real experts. #{Topic}",
			"Rethinking {topic}: the modern approach for {audience}. #{topic2}",
			"Balance {topic} and {topic2} without the stress. Here's how. #{Topic}",
			"The {topic} tools {audience} actually use. Ranked. #{Topic}",
		},
	},
}
