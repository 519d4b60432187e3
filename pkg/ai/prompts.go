package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Prompt builders are pure: the same inputs always produce the same
// string. Callers supply any date context explicitly; nothing here reads
// the clock or the network.

func indentJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ExtractionPrompt asks the model to pull structured career entities out
// of free text, given the user's existing vault for dedup context.
func ExtractionPrompt(rawText string, vault any) string {
	return fmt.Sprintf(`You are a professional career information extraction assistant. Analyze the following text and extract relevant career-related information.

**Raw Text:**
%s

**User's Existing Identity Vault Data:**
%s

**Task:**
Extract all relevant career information from the raw text and return it in JSON format. Only extract NEW information that is not already in the existing vault data (unless it's an update to existing data).

**Output Format:**
Return a JSON object with the following structure. Each array should contain objects with the specified fields:

{
  "education": [
    {
      "institution": "string (required)",
      "degree": "string (required)",
      "fieldOfStudy": "string (required)",
      "startDate": "YYYY-MM-DD",
      "endDate": "YYYY-MM-DD or null",
      "gpa": number or null,
      "description": "string (optional)",
      "achievements": ["string", ...] (optional)
    }
  ],
  "experience": [
    {
      "title": "string (required)",
      "company": "string (optional)",
      "location": "string (optional)",
      "employmentType": "full-time" | "part-time" | "contract" | "internship" | "freelance",
      "startDate": "YYYY-MM-DD",
      "endDate": "YYYY-MM-DD or null",
      "bullets": ["string", ...] (optional),
      "description": "string (optional)",
      "achievements": ["string", ...] (optional)
    }
  ],
  "projects": [
    {
      "name": "string (required)",
      "description": "string (optional)",
      "startDate": "YYYY-MM-DD",
      "endDate": "YYYY-MM-DD or null",
      "bullets": ["string", ...] (optional),
      "technologies": ["string", ...] (optional),
      "skills": ["string", ...] (optional),
      "url": "string (optional)",
      "achievements": ["string", ...] (optional)
    }
  ],
  "skills": [
    {
      "name": "string (required)",
      "category": "programming" | "framework" | "tool" | "language" | "soft-skill" | "other",
      "proficiency": "beginner" | "intermediate" | "advanced" | "expert",
      "yearsOfExperience": number or null
    }
  ],
  "awards": [
    {
      "title": "string (required)",
      "issuer": "string (optional)",
      "date": "YYYY-MM-DD",
      "description": "string (optional)",
      "category": "academic" | "professional" | "competition" | "recognition" | "other"
    }
  ]
}

**Instructions:**
1. Only extract information that is explicitly mentioned in the raw text
2. For dates:
   - If a date is explicitly mentioned, extract it in YYYY-MM-DD format
   - If only endDate is mentioned (e.g., "graduated in 2024"), infer startDate (e.g., for a 4-year degree, startDate would be 4 years before endDate)
   - If only startDate is mentioned, endDate can be null (ongoing)
   - If neither date is mentioned, try to infer from context (e.g., "just graduated" -> recent endDate, "currently studying" -> recent startDate, endDate null)
   - startDate is REQUIRED - if you cannot determine it, estimate based on context (e.g., typical degree duration)
3. For employmentType, infer from context (e.g., "internship" -> "internship", "worked at" -> "full-time")
4. For skills, try to infer category and proficiency from context if possible
5. If no information is found for a category, return an empty array []
6. Be accurate and only extract what is clearly stated or can be reasonably inferred from the text

Return ONLY the JSON object, no additional text or explanation.`, rawText, indentJSON(vault))
}

// EnhancementPrompt asks the model to polish extracted entries into
// resume-ready language while keeping facts intact.
func EnhancementPrompt(extracted any) string {
	return fmt.Sprintf(`You are a professional resume and LinkedIn content writer. Enhance the following career information to make it professional, impactful, and ready for resumes and LinkedIn profiles.

**Extracted Entities:**
%s

**Task:**
Enhance and polish the extracted information to make it more professional and impactful. Improve descriptions, bullet points, and achievements while maintaining accuracy.

**Output Format:**
Return a JSON object with the same structure as the input, but with enhanced content:
- Improve bullet points to be achievement-focused with metrics where possible
- Enhance descriptions to be concise and professional
- Ensure achievements are quantifiable and specific
- Maintain all factual information (dates, names, etc.) exactly as provided

Return ONLY the JSON object with enhanced content.`, indentJSON(extracted))
}

// LinkedInSuggestionsPrompt asks the model which LinkedIn sections should
// change given a new progress update against the current vault.
func LinkedInSuggestionsPrompt(newProgress any, vault any, rawText string) string {
	return fmt.Sprintf(`You are a professional LinkedIn content strategist. Based on the user's new progress update and their existing profile data, generate actionable LinkedIn update suggestions.

**User's New Progress Update:**
%s

**Original Raw Text:**
%s

**User's Existing Identity Vault Data (Current LinkedIn Profile):**
%s

**Task:**
Analyze the new progress update and determine what LinkedIn sections should be updated. For each section, decide:
1. **shouldUpdate**: Should this section be updated? (true if there's new/updated information, false if nothing changed)
2. **suggestions**: If shouldUpdate is true, provide LinkedIn-ready content for that section

**Output Format:**
Return a JSON object with the following structure:

{
  "education": {
    "shouldUpdate": true/false,
    "suggestedEntry": {
      "institution": "string (required if shouldUpdate is true)",
      "program": "string (e.g., 'Bachelor of Science in Computer Science')",
      "duration": "string (e.g., '2020 - 2024' or '2024')",
      "description": "string (brief, LinkedIn-style description)"
    }
  },
  "position": {
    "shouldUpdate": true/false,
    "targetRole": "string (the role title to update, if shouldUpdate is true)",
    "suggestedBullet": "string (one LinkedIn-style bullet point, achievement-focused with metrics if possible)"
  },
  "skills": {
    "shouldUpdate": true/false,
    "add": ["string", ...] (array of new skill names to add),
    "strengthen": ["string", ...] (array of existing skills that should be highlighted),
    "reason": "string (brief explanation of why these skills are relevant)"
  },
  "post": {
    "shouldUpdate": true/false,
    "tone": "Professional" | "Casual" | "Enthusiastic" | "Reflective",
    "content": "string (LinkedIn post content, 2-4 sentences, engaging and professional)",
    "suggestedHashtags": ["string", ...] (array of 3-5 relevant hashtags, e.g., "#softwareengineering", "#learning")
  }
}

**Guidelines:**
1. **Education**: MUST suggest if there's ANY education-related information in the new progress update (e.g., "graduated", "completed degree", "got my bachelor's/master's"). Even if dates are not explicit, infer reasonable dates. Match the format "Program Name at Institution" with duration.
2. **Position**: Only suggest if there's a new experience entry or a significant update to an existing role. The bullet should be achievement-focused and metric-driven if possible.
3. **Skills**: Only suggest if there are new skills mentioned or skills that gained new significance.
4. **Post**: Only suggest if the progress update is significant enough to share publicly.

**Instructions:**
- Be LIBERAL for Education - if there's any education-related content, always suggest an update
- Be conservative for Position, Skills, and Post - it's better to skip an update than to suggest unnecessary changes
- All content should be LinkedIn-ready (professional, concise, engaging)
- Include 3-5 relevant hashtags for posts

Return ONLY the JSON object, no additional text or explanation.`, indentJSON(newProgress), rawText, indentJSON(vault))
}

// JobDescription is the target-role context supplied by the client for
// resume generation and mock interviews.
type JobDescription struct {
	Company      string `json:"company"`
	Position     string `json:"position"`
	Requirements string `json:"requirements"`
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}

// ResumePrompt asks the model for a one-page resume tailored to a job.
func ResumePrompt(job JobDescription, profile any, vault any) string {
	return fmt.Sprintf(`You are a professional resume writer. Generate a customized resume based on the target job description and the user's Identity Vault data.

**Target Job Description:**
Company: %s
Position: %s
Requirements: %s

**User Profile:**
%s

**User's Identity Vault Data:**
%s

**Task:**
Generate a one-page resume tailored specifically to the target job. Select and enhance only the MOST RELEVANT entries from the Identity Vault that match the job requirements.

**Output Format:**
Return a JSON object with the following structure:

{
  "header": {
    "name": "string (from the user profile)",
    "email": "string (optional)",
    "phone": "string (optional)",
    "links": [
      {
        "platform": "string (e.g., 'linkedin', 'github')",
        "url": "string"
      }
    ],
    "summary": "string (1-2 sentences, professional summary based on the profile plus relevant vault data)"
  },
  "education": {
    "sectionTitle": "Education",
    "entries": [
      {
        "degreeName": "string (e.g., 'Bachelor of Science in Computer Science, GPA: 3.9')",
        "dateRange": "string (e.g., 'Sep 2022 - Present' or 'Sep 2022 - May 2026')",
        "bullets": ["string", "string", "string"]
      }
    ]
  },
  "experience": {
    "sectionTitle": "Experience",
    "entries": [
      {
        "title": "string (e.g., 'Software Engineering Intern at Google')",
        "dateRange": "string (e.g., 'May 2024 - Aug 2024')",
        "bullets": ["string", "string", "string"]
      }
    ]
  },
  "skills": {
    "sectionTitle": "Skills",
    "bullets": ["string", "string", "string"]
  }
}

**Instructions:**
1. **Relevance First**: Only include entries that are relevant to the target job. Filter and prioritize based on job requirements.
2. **Quality Over Quantity**: Include ALL relevant education entries, maximum 3 experiences, relevant skills grouped logically.
3. **Date Format**: Use "Month Year - Month Year" (e.g., "May 2024 - Aug 2024") or "Month Year - Present" for ongoing.
4. **Bullet Points**: exactly 3 per education/experience entry, achievement-focused with metrics when possible (e.g., "Built X reducing Y by Z%%"). Start with action verbs.
5. **Skills**: 3-4 bullets, each grouping related skills (e.g., "Programming Languages: JavaScript, Python, Java"). Prioritize skills mentioned in job requirements.
6. **One Page Limit**: Ensure all content fits on one page. Be concise but impactful.

Return ONLY the JSON object, no additional text or explanation.`,
		orNotSpecified(job.Company), orNotSpecified(job.Position), orNotSpecified(job.Requirements),
		indentJSON(profile), indentJSON(vault))
}

// Turn is one entry in an interview transcript.
type Turn struct {
	Role         string `json:"role"` // interviewer or user
	Content      string `json:"content"`
	QuestionType string `json:"questionType,omitempty"`
	Timestamp    string `json:"timestamp,omitempty"`
}

// InterviewQuestionPrompt asks the model for the first or next interview
// question given the job, candidate background, and transcript so far.
func InterviewQuestionPrompt(job JobDescription, profile any, vault any, history []Turn, questionNumber int) string {
	var task string
	if questionNumber <= 1 {
		task = `**Task:**
Generate the FIRST interview question. This should be an opening question that:
1. Greets the candidate professionally
2. Introduces the interview context (position and company)
3. Asks a relevant question based on the job requirements and candidate's background
4. Can be technical, behavioral, or mixed, depending on what's most appropriate`
	} else {
		task = fmt.Sprintf(`**Previous Conversation:**
%s

**Task:**
Generate the NEXT interview question (Question #%d). This should:
1. Build on the previous conversation
2. Ask a follow-up question based on the candidate's previous answer
3. Explore different aspects of their skills and experience
4. Progress naturally through the interview
5. Can be technical, behavioral, or mixed`, indentJSON(history), questionNumber)
	}

	return fmt.Sprintf(`You are a professional technical interviewer conducting a job interview. Generate an appropriate interview question based on the job description and the candidate's profile.

**Target Job:**
Company: %s
Position: %s
Requirements: %s

**Candidate Profile:**
%s

**Candidate's Identity Vault (Background):**
%s

%s

**Output Format:**
Return a JSON object with the following structure:

{
  "question": "string (the interview question to ask, including greeting if first question)",
  "type": "technical" | "behavioral" | "mixed",
  "hint": "string (optional, a brief hint about what the interviewer is looking for)"
}

**Guidelines:**
1. First question should include a professional greeting and context about the interview
2. Follow-up questions should reference or build upon previous answers naturally
3. Use the candidate's background (projects, experiences, skills) to ask relevant questions
4. Questions should align with the job requirements and feel like a real interview conversation
5. Match the question difficulty to the position level (intern vs senior)

Return ONLY the JSON object, no additional text or explanation.`,
		orNotSpecified(job.Company), orNotSpecified(job.Position), orNotSpecified(job.Requirements),
		indentJSON(profile), indentJSON(vault), task)
}

// InterviewFeedbackPrompt asks the model to score a finished interview.
func InterviewFeedbackPrompt(history []Turn, job JobDescription, profile any) string {
	return fmt.Sprintf(`You are a professional interview evaluator. Analyze the complete interview conversation and provide comprehensive feedback.

**Interview Conversation:**
%s

**Target Job:**
Company: %s
Position: %s
Requirements: %s

**Candidate Profile:**
%s

**Task:**
Analyze the entire interview conversation and provide structured feedback including:
1. Overall performance score (0-5 scale)
2. Key strengths demonstrated
3. Areas for improvement
4. Specific actionable recommendations
5. Detailed breakdown by category (technical, communication, problem-solving, cultural fit)

**Output Format:**
Return a JSON object with the following structure:

{
  "overallScore": number (0-5, can be decimal like 4.2),
  "strengths": ["string", "string", ...] (at least 3-5 strengths),
  "areasForImprovement": ["string", "string", ...] (at least 3-5 areas),
  "recommendations": ["string", "string", ...] (at least 3-5 specific actionable recommendations),
  "breakdown": {
    "technical": number (0-5),
    "communication": number (0-5),
    "problemSolving": number (0-5),
    "culturalFit": number (0-5)
  }
}

**Feedback Guidelines:**
1. Strengths: be specific and reference actual answers from the conversation
2. Areas for improvement: be constructive and actionable
3. Recommendations: provide specific, actionable steps the candidate can take
4. Be balanced, specific, and professional; maintain a supportive tone

Return ONLY the JSON object, no additional text or explanation.`,
		indentJSON(history),
		orNotSpecified(job.Company), orNotSpecified(job.Position), orNotSpecified(job.Requirements),
		indentJSON(profile))
}
