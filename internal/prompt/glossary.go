package prompt

// Glossary is the LD technique vocabulary injected verbatim into envision-mode
// instructions to bias the model toward circuit terminology.
const Glossary = `- VC (value/criterion): the value premise and the standard used to weigh offense under it.
- Framework debate: contesting whose value/criterion controls the evaluation of the round.
- Warrant: the reason a claim is true; claims without warrants lose to claims with them.
- Link: the connection between an argument and the impact it claims.
- Impact: the terminal harm or benefit an argument resolves to.
- Turn: flipping an opponent's argument into offense for your side (link turn or impact turn).
- Offense: arguments that give a reason to vote for you; defense only takes reasons away.
- Terminal defense: defense that reduces an argument to zero risk rather than mitigating it.
- Weighing: comparing impacts by magnitude, probability, timeframe, and reversibility.
- Meta-weighing: arguing why one weighing mechanism precedes another.
- Clash: direct engagement between opposing arguments on the same flow.
- Drop: an argument the opponent never answered; a dropped argument is conceded.
- Extension: re-explaining a conceded or winning argument in a later speech with its warrant and impact.
- Collapse: narrowing to the fewest winning arguments in the final speeches.
- Voter: an argument framed as an independent reason to win the ballot.
- Crystallization: the closing big-picture story telling the judge how to vote and why.
- Overview: framing analysis delivered at the top of a speech before line-by-line.
- Line-by-line: answering arguments in the order they appear on the flow.
- Signposting: labeling where on the flow each answer applies.
- Flowing: tracking arguments speech by speech across the round.
- Spreading: speaking at high speed to maximize argument volume.
- Card: a cut piece of evidence with a cite and highlighted warrant text.
- Analytic: an argument made from reasoning alone, without carded evidence.
- Blocks: pre-written answers to anticipated arguments.
- Case: the constructive position (AC for affirmative, NC for negative).
- 1AR: the first affirmative rebuttal; the hardest speech, usually requiring heavy collapse.
- 2NR: the final negative rebuttal; picks the winning layer and closes doors.
- 2AR: the final affirmative rebuttal; writes the ballot for the judge.
- CX: cross-examination; used to expose links, commit opponents to answers, and set up later speeches.
- Prep time: the banked minutes a debater may spend between speeches.
- Burden: what a side must prove to win under the framework.
- Presumption: who wins when no offense is left on the flow.
- Counterplan: a negative advocacy competing with the affirmative's plan.
- Disad (DA): a disadvantage; offense about what going affirmative causes.
- Kritik (K): a criticism of the opponent's assumptions, usually with an alternative.
- Theory: arguments about the rules of debate itself, run as a shell (interpretation, violation, standards, voters).
- Topicality: theory arguing the affirmative does not defend the resolution.
- RVI: a reverse voting issue; winning a theory response becomes its own voter.
- Condo: conditionality; whether an advocacy may be kicked in later speeches.
- Layer: an independent level of the debate (theory above framework above substance); judges resolve higher layers first.
- Uplayering: moving the debate to a higher layer than the opponent is winning on.
- Tricks: short, easily dropped arguments with outsized ballot implications.
- Lay judge: a judge without circuit experience who rewards clarity and persuasion over technique.
- Flay judge: a judge between lay and flow; tracks arguments but discounts speed and jargon.
- Tech over truth: judging purely on the flow rather than real-world plausibility.`
